package profile

import (
	"errors"
	"fmt"
	"strings"
)

// FallbackReason is reported when a failure carries no usable reasons.
const FallbackReason = "An unexpected error has occured."

// FieldError is one validation failure returned by the API.
type FieldError struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// APIError is a normalized non-2xx response.
type APIError struct {
	StatusCode int
	Errors     []FieldError
}

func (e *APIError) Error() string {
	reasons := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		reasons = append(reasons, fe.Reason)
	}
	return fmt.Sprintf("profile api: status %d: %s", e.StatusCode, strings.Join(reasons, "; "))
}

// Fallback returns the single generic error entry.
func Fallback() []FieldError {
	return []FieldError{{Reason: FallbackReason}}
}

// Reasons extracts the field errors carried by err, or the fallback entry
// when err is not an APIError or has none.
func Reasons(err error) []FieldError {
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 {
		out := make([]FieldError, len(apiErr.Errors))
		copy(out, apiErr.Errors)
		return out
	}
	return Fallback()
}

// GeneralError returns the first reason not tied to a field, mirroring how
// the form shows one banner for non-field failures.
func GeneralError(errs []FieldError) string {
	for _, fe := range errs {
		if fe.Field == "" || fe.Field == "none" {
			return fe.Reason
		}
	}
	return ""
}
