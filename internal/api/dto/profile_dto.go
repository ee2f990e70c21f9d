package dto

import "github.com/spec-kit/account-console/internal/profile"

// TimezoneUpdateRequest payload for PUT /profile/timezone.
type TimezoneUpdateRequest struct {
	Current  string `json:"current"`
	Timezone string `json:"timezone"`
}

// TimezoneFormResponse mirrors the form state after submission.
type TimezoneFormResponse struct {
	Phase        string               `json:"phase"`
	Submitting   bool                 `json:"submitting"`
	Selected     string               `json:"selected"`
	Success      string               `json:"success,omitempty"`
	Errors       []profile.FieldError `json:"errors,omitempty"`
	GeneralError string               `json:"general_error,omitempty"`
	Profile      *profile.Profile     `json:"profile,omitempty"`
}
