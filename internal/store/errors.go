package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a write would violate a unique
	// constraint (e.g. a second staff member with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the database rejects a record for
	// a constraint violation. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnknownTable is returned by ReferenceChecker for tables outside
	// its whitelist.
	ErrUnknownTable = errors.New("unknown reference table")

	// ErrConflict is returned when a conditional write lost a race, for
	// example a refresh token that was rotated concurrently.
	ErrConflict = errors.New("concurrent modification")

	// ErrTransactionFailed is returned when a transaction cannot begin or
	// commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrStaffNotFound indicates that no staff member matched.
	ErrStaffNotFound = fmt.Errorf("%w: staff", ErrNotFound)

	// ErrTokenNotFound indicates that no mobile token row matched a jti.
	ErrTokenNotFound = fmt.Errorf("%w: token", ErrNotFound)
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError adds entity and operation context to a store failure.
type StoreError struct {
	Entity    string // The entity type (e.g., "lead", "estimate")
	Operation string // The operation that failed (e.g., "create", "convert")
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
