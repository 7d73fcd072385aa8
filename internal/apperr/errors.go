// Package apperr defines the error kinds surfaced by repositories and
// services, so callers can distinguish "not found" from "invalid input"
// from "operation failed" instead of checking for nil results.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means an id or coordinate lookup had no match.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means an ownership or privilege check failed.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized means the caller presented no valid credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict means a unique field (email, username) is already taken.
	ErrConflict = errors.New("conflict")
)

// ValidationError reports an enum or range violation on create or update.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for a field.
func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
