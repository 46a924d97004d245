package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// Preparer is implemented by requests that normalise or sanitise their
// fields once struct rules pass.
type Preparer interface {
	Prepare(s *Sanitizer)
}

// Checker is implemented by requests with rules spanning several fields.
// It returns messages keyed by field.
type Checker interface {
	Check() map[string]string
}

// Reference is a foreign key that must point at an existing row.
type Reference struct {
	Field string
	Table string
	ID    int64
}

// Referencer is implemented by requests carrying foreign keys.
type Referencer interface {
	References() []Reference
}

// Creator is implemented by create requests. New builds the record that
// actor is creating.
type Creator[E any] interface {
	New(actor int64, now time.Time) (E, error)
}

// Updater is implemented by update requests. Apply copies the fields that
// were sent onto e and may reject the change with a *domain.StateError.
type Updater[E any] interface {
	Apply(e E, now time.Time) error
}

// Binder decodes and validates request bodies.
type Binder struct {
	validator *Validator
	sanitizer *Sanitizer
	refs      store.ReferenceChecker
}

// NewBinder creates a Binder that checks references through refs.
func NewBinder(refs store.ReferenceChecker) *Binder {
	return &Binder{validator: NewValidator(), sanitizer: NewSanitizer(), refs: refs}
}

// Sanitizer returns the sanitiser used by Prepare.
func (b *Binder) Sanitizer() *Sanitizer {
	return b.sanitizer
}

// Bind decodes r's JSON body into dst and validates it. An empty body
// decodes as an empty object. Input problems return *ValidationError;
// anything else is an internal failure.
func (b *Binder) Bind(r *http.Request, dst any) error {
	if err := shared.DecodeJSON(r, dst); err != nil && !errors.Is(err, io.EOF) {
		return decodeError(err)
	}
	return b.Validate(r.Context(), dst)
}

// Validate runs struct rules, Prepare, Check and reference checks on an
// already populated request. The struct rules run again after Prepare so
// a field that sanitises to nothing still fails "required".
func (b *Binder) Validate(ctx context.Context, dst any) error {
	if err := b.structRules(dst); err != nil {
		return err
	}
	if p, ok := dst.(Preparer); ok {
		p.Prepare(b.sanitizer)
		if err := b.structRules(dst); err != nil {
			return err
		}
	}

	fields := map[string][]string{}
	if c, ok := dst.(Checker); ok {
		for field, msg := range c.Check() {
			fields[field] = append(fields[field], msg)
		}
	}

	if rf, ok := dst.(Referencer); ok && b.refs != nil {
		for _, ref := range rf.References() {
			if ref.ID == 0 || ref.Table == "" || len(fields[ref.Field]) > 0 {
				continue
			}
			exists, err := b.refs.Exists(ctx, ref.Table, ref.ID)
			if err != nil {
				return fmt.Errorf("check %s reference: %w", ref.Field, err)
			}
			if !exists {
				fields[ref.Field] = append(fields[ref.Field],
					fmt.Sprintf("The selected %s is invalid.", attribute(ref.Field)))
			}
		}
	}

	if len(fields) > 0 {
		return newErrors(fields)
	}
	return nil
}

func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		return NewValidationError(field,
			fmt.Sprintf("The %s must be of type %s.", attribute(field), jsonKind(typeErr.Type.Kind().String())))
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return NewValidationError("body", "The request body is too large.")
	}
	return NewValidationError("body", "The request body must be valid JSON.")
}

func jsonKind(kind string) string {
	switch {
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"), strings.HasPrefix(kind, "float"):
		return "number"
	case kind == "bool":
		return "boolean"
	case kind == "slice", kind == "array":
		return "array"
	case kind == "struct", kind == "map":
		return "object"
	}
	return kind
}

func (b *Binder) structRules(dst any) error {
	fields, err := b.validator.Struct(dst)
	if err != nil {
		return fmt.Errorf("validate request: %w", err)
	}
	if len(fields) > 0 {
		return newErrors(fields)
	}
	return nil
}
