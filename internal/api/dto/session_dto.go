package dto

import (
	"time"

	"github.com/spec-kit/account-console/internal/domain"
)

// SessionOpenRequest payload for POST /sessions. The token is the one the
// browser signed in with; user_type is optional and checked against it.
type SessionOpenRequest struct {
	Token    string          `json:"token"`
	Scopes   string          `json:"scopes"`
	Expiry   string          `json:"expiry"`
	UserType domain.UserType `json:"user_type"`
}

// SessionResponse returns a new session token.
type SessionResponse struct {
	SessionID string          `json:"session_id"`
	Token     string          `json:"token"`
	UserType  domain.UserType `json:"user_type"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// StoreTokenRequest payload for PUT /session/tokens/:role.
type StoreTokenRequest struct {
	Token  string `json:"token"`
	Scopes string `json:"scopes"`
	Expiry string `json:"expiry"`
}

// ActiveTokenResponse describes the active token without revealing it.
type ActiveTokenResponse struct {
	Present     bool   `json:"present"`
	Token       string `json:"token,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Scopes      string `json:"scopes,omitempty"`
	Expiry      string `json:"expiry,omitempty"`
}

// AuditEntryResponse is one audit trail row.
type AuditEntryResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Role        string    `json:"role,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
