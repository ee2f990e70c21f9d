package domain

import "time"

// AuditKind enumerates recorded session changes.
type AuditKind string

const (
	AuditTokenStored  AuditKind = "TOKEN_STORED"
	AuditRoleSwitched AuditKind = "ROLE_SWITCHED"
	AuditTimezoneSet  AuditKind = "TIMEZONE_UPDATED"
)

// AuditEntry records a change to a browser session. Raw tokens are never kept.
type AuditEntry struct {
	ID               string
	SessionID        string
	Kind             AuditKind
	Role             *Role
	TokenFingerprint string
	Detail           string
	CreatedAt        time.Time
}
