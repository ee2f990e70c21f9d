package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-console/internal/domain"
)

func TestNewSession_RoundTrip(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 30)

	sess, token, err := tm.NewSession(domain.UserTypeProxy)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), sess.ExpiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, sess.ID, claims.SessionID)
	require.Equal(t, domain.UserTypeProxy, claims.UserType)
}

func TestParseToken_WrongSecret(t *testing.T) {
	_, token, err := NewTokenManager("a", 5).NewSession(domain.UserTypeParent)
	require.NoError(t, err)

	_, err = NewTokenManager("b", 5).ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_WrongAlgorithm(t *testing.T) {
	claims := &Claims{SessionID: "9b2f4c1e-4a52-4a7e-9f39-3f1c1b0c2a11", UserType: domain.UserTypeParent}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = NewTokenManager("s", 5).ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	tm := NewTokenManager("s", 5)
	token, err := tm.sign(domain.Session{ID: "9b2f4c1e-4a52-4a7e-9f39-3f1c1b0c2a11", ExpiresAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_RejectsNonUUIDSession(t *testing.T) {
	tm := NewTokenManager("s", 5)
	token, err := tm.sign(domain.Session{ID: "../../etc", ExpiresAt: time.Now().Add(time.Minute)})
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
}
