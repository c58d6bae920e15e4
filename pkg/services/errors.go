package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionBusy is returned when a turn is submitted while the previous
	// turn in the session is still pending or processing
	ErrSessionBusy = errors.New("session has a turn in flight")

	// ErrQuotaExceeded is returned when a workspace has exhausted its
	// daily turn quota
	ErrQuotaExceeded = errors.New("daily turn quota exceeded")

	// ErrMessageBlocked is returned when the prompt guard rejects a message
	ErrMessageBlocked = errors.New("message blocked by prompt guard")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
