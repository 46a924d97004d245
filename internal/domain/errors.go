package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidModelType is returned for an unknown polymorphic model type.
	ErrInvalidModelType = errors.New("invalid model type")

	// ErrInvalidState is returned when an action is not allowed in the
	// record's current state (e.g. converting an invoiced estimate).
	ErrInvalidState = errors.New("invalid state transition")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// StateError reports a rejected state transition against a single field.
// It matches ErrInvalidState with errors.Is.
type StateError struct {
	Field   string
	Message string
}

// NewStateError creates a StateError for field.
func NewStateError(field, format string, args ...any) *StateError {
	return &StateError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidState.
func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}
