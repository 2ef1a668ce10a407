// Package services contains the domain services: entity store, identifier
// resolution, session assembly, activities, commitments, the approval state
// machine, disambiguation, and data quality.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrConflict is returned on a state-machine violation, e.g. approving
	// an approval that is no longer pending.
	ErrConflict = errors.New("conflicting state")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
