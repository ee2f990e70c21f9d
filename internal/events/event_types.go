package events

import (
	"time"

	"github.com/spec-kit/account-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTokenStored     EventType = "token_stored"
	EventRoleSwitched    EventType = "role_switched"
	EventTimezoneUpdated EventType = "timezone_updated"
)

// Event represents a session change emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TokenStoredPayload payload. Fingerprint identifies the token without revealing it.
type TokenStoredPayload struct {
	Role        domain.Role `json:"role"`
	Fingerprint string      `json:"fingerprint"`
	Expiry      string      `json:"expiry"`
}

// RoleSwitchedPayload payload.
type RoleSwitchedPayload struct {
	Role        domain.Role `json:"role"`
	Fingerprint string      `json:"fingerprint"`
}

// TimezoneUpdatedPayload payload.
type TimezoneUpdatedPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}
