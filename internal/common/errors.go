package common

import "errors"

// Business logic errors
var (
	// ErrUnauthorized no or invalid session on a protected operation
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound referenced record does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput request failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreFailure the record store itself failed
	ErrStoreFailure = errors.New("store failure")
)

// InvalidInputError carries the first offending field and its user-facing
// message. It unwraps to ErrInvalidInput so handlers can match with errors.Is.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInput creates an InvalidInputError for a field
func NewInvalidInput(field, message string) error {
	return &InvalidInputError{Field: field, Message: message}
}
