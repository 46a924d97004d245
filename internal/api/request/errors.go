package request

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// DefaultMessage heads every validation response.
const DefaultMessage = "The given data was invalid."

// ValidationError carries per-field messages for a 422 response.
type ValidationError struct {
	Message string
	Errors  map[string][]string
}

// NewValidationError creates a ValidationError with one field message.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Message: msg, Errors: map[string][]string{field: {msg}}}
}

func (e *ValidationError) Error() string {
	fields := slices.Sorted(maps.Keys(e.Errors))
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// Is lets callers match any ValidationError against domain.ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == domain.ErrValidation
}

// Add appends a message for field.
func (e *ValidationError) Add(field, msg string) {
	if e.Errors == nil {
		e.Errors = map[string][]string{}
	}
	e.Errors[field] = append(e.Errors[field], msg)
}

// Empty reports whether no messages were collected.
func (e *ValidationError) Empty() bool {
	return len(e.Errors) == 0
}

// FromStateError turns a domain state error into a field error.
func FromStateError(err error) (*ValidationError, bool) {
	var se *domain.StateError
	if !errors.As(err, &se) {
		return nil, false
	}
	return NewValidationError(se.Field, se.Message), true
}

func newErrors(fields map[string][]string) *ValidationError {
	msg := DefaultMessage
	if len(fields) > 0 {
		first := slices.Sorted(maps.Keys(fields))[0]
		if len(fields[first]) > 0 {
			msg = fields[first][0]
		}
	}
	return &ValidationError{Message: msg, Errors: fields}
}
