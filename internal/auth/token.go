package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/account-console/internal/domain"
)

// TokenManager issues and validates the signed session tokens that identify
// a browser's key-value namespace.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims describes the session JWT payload.
type Claims struct {
	SessionID string          `json:"sid"`
	UserType  domain.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

// NewSession allocates a session ID and signs a token for it.
func (tm *TokenManager) NewSession(userType domain.UserType) (domain.Session, string, error) {
	sess := domain.Session{
		ID:        uuid.NewString(),
		UserType:  userType,
		ExpiresAt: time.Now().Add(tm.ttl),
	}
	token, err := tm.sign(sess)
	if err != nil {
		return domain.Session{}, "", err
	}
	return sess, token, nil
}

func (tm *TokenManager) sign(sess domain.Session) (string, error) {
	claims := &Claims{
		SessionID: sess.ID,
		UserType:  sess.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.ID,
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return nil, errors.New("invalid session id")
	}
	return claims, nil
}
