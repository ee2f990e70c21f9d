// Package session keeps the parent and proxy credential sets of a browser
// session and switches the active set between them.
package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/account-console/internal/domain"
)

// Store exposes typed access to the token records held in a KV.
type Store struct {
	kv     KV
	now    func() time.Time
	logger *zap.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// NewStore builds a Store over kv.
func NewStore(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) read(ctx context.Context, prefix string) (Token, error) {
	var t Token
	var err error
	if t.Token, err = s.kv.Get(ctx, prefix+tokenSuffix); err != nil {
		return Token{}, fmt.Errorf("read %s token: %w", prefix, err)
	}
	if t.Scopes, err = s.kv.Get(ctx, prefix+scopesSuffix); err != nil {
		return Token{}, fmt.Errorf("read %s scopes: %w", prefix, err)
	}
	if t.Expiry, err = s.kv.Get(ctx, prefix+expireSuffix); err != nil {
		return Token{}, fmt.Errorf("read %s expiry: %w", prefix, err)
	}
	return t, nil
}

// RoleToken returns the stored token set for role.
func (s *Store) RoleToken(ctx context.Context, role domain.Role) (Token, error) {
	prefix, err := RolePrefix(role)
	if err != nil {
		return Token{}, err
	}
	return s.read(ctx, prefix)
}

// ActiveToken returns the token set currently used for requests.
func (s *Store) ActiveToken(ctx context.Context) (Token, error) {
	return s.read(ctx, ActivePrefix)
}

// StoreToken writes t under prefix. Nothing is written unless both the token
// value and its expiry are present; the returned bool reports whether a write
// happened. All three fields are written in one SetMany.
func (s *Store) StoreToken(ctx context.Context, prefix string, t Token) (bool, error) {
	if t.Token == "" || t.Expiry == "" {
		return false, nil
	}
	if err := s.kv.SetMany(ctx, entries(prefix, t)); err != nil {
		return false, fmt.Errorf("store %s token: %w", prefix, err)
	}
	return true, nil
}

// StoreRoleToken writes t as role's token set.
func (s *Store) StoreRoleToken(ctx context.Context, role domain.Role, t Token) (bool, error) {
	prefix, err := RolePrefix(role)
	if err != nil {
		return false, err
	}
	return s.StoreToken(ctx, prefix, t)
}

// PromoteRoleToActive copies role's token set over the active one. When the
// role has no token the active set is left untouched and false is returned.
func (s *Store) PromoteRoleToActive(ctx context.Context, role domain.Role) (bool, error) {
	t, err := s.RoleToken(ctx, role)
	if err != nil {
		return false, err
	}
	if t.Empty() {
		s.logger.Debug("no stored token to promote", zap.String("role", string(role)))
		return false, nil
	}
	if err := s.kv.SetMany(ctx, entries(ActivePrefix, t)); err != nil {
		return false, fmt.Errorf("promote %s token: %w", role, err)
	}
	return true, nil
}

// IsParentTokenValid reports whether the stored parent token has not yet
// expired. An expiry equal to the current time still counts as valid. A
// missing expiry is deliberately reported as invalid rather than valid,
// since there is no parent session to return to. An unparsable one is
// invalid and returns ErrMalformedExpiry.
func (s *Store) IsParentTokenValid(ctx context.Context) (bool, error) {
	prefix, _ := RolePrefix(domain.RoleParent)
	raw, err := s.kv.Get(ctx, prefix+expireSuffix)
	if err != nil {
		return false, fmt.Errorf("read parent expiry: %w", err)
	}
	if raw == "" {
		return false, nil
	}
	expiry, err := ParseExpiry(raw)
	if err != nil {
		s.logger.Warn("parent token expiry unparsable", zap.Error(err))
		return false, err
	}
	return !s.now().After(expiry), nil
}
