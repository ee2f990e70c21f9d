// Package profile is a client for the remote account profile API.
package profile

import "github.com/spec-kit/account-console/internal/domain"

// Profile is the subset of the remote profile the console uses.
type Profile struct {
	UID                int             `json:"uid"`
	Username           string          `json:"username"`
	Email              string          `json:"email"`
	Timezone           string          `json:"timezone"`
	Restricted         bool            `json:"restricted"`
	EmailNotifications bool            `json:"email_notifications"`
	UserType           domain.UserType `json:"user_type"`
}

// Update is the PUT /profile payload. Only the timezone is edited here.
type Update struct {
	Timezone string `json:"timezone"`
}
