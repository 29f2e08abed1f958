package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrAboutAlreadyExists = errors.New("about profile already exists")
	ErrAboutNotDeletable  = errors.New("about profile cannot be deleted")
)

// Validation error kinds.
const (
	KindMissingField   = "missing_field"
	KindMalformedEmail = "malformed_email"
	KindInvalidField   = "invalid_field"
)

// ValidationError reports bad caller input. It is always request-scoped.
type ValidationError struct {
	Kind    string `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewValidationError(kind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NotificationError wraps a failed outbound notification. It is logged and
// never returned to HTTP callers.
type NotificationError struct {
	Provider string
	Err      error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification via %s failed: %v", e.Provider, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
