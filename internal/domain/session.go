package domain

import "time"

// Session identifies one browser's key-value namespace.
type Session struct {
	ID        string
	UserType  UserType
	ExpiresAt time.Time
}
