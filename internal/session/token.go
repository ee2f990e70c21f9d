package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/spec-kit/account-console/internal/domain"
)

const (
	// ActivePrefix holds the token set used for outgoing requests.
	ActivePrefix = "authentication"

	tokenSuffix  = "/token"
	scopesSuffix = "/scopes"
	expireSuffix = "/expire"
)

var (
	ErrUnknownRole     = errors.New("unknown role")
	ErrMalformedExpiry = errors.New("malformed token expiry")
)

// Token is one stored credential set. Expiry is kept as the ISO-8601 string
// the API returned.
type Token struct {
	Token  string `json:"token"`
	Scopes string `json:"scopes"`
	Expiry string `json:"expiry"`
}

// Empty reports whether no token value is present.
func (t Token) Empty() bool {
	return t.Token == ""
}

// RolePrefix returns the storage prefix for a role's token set.
func RolePrefix(role domain.Role) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return ActivePrefix + "/" + string(role) + "_token", nil
}

var expiryLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseExpiry parses the stored expiry. Timestamps without a zone are UTC.
func ParseExpiry(s string) (time.Time, error) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedExpiry, s)
}

func entries(prefix string, t Token) map[string]string {
	return map[string]string{
		prefix + tokenSuffix:  t.Token,
		prefix + expireSuffix: t.Expiry,
		prefix + scopesSuffix: t.Scopes,
	}
}
