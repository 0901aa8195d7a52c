package domain

import "errors"

var (
	// ErrNotFound maps to HTTP 404 at the transport edge.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorised maps to HTTP 401 with the fixed response body.
	ErrUnauthorised = errors.New("not authorised")
)

// ValidationError carries the exact user-facing message for a rejected
// submission. Only the first failing rule of a request produces one.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
