package postgres

import (
	"database/sql"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// nullScan scans a nullable column into a pointer field.
type nullScan[T any] struct{ dst **T }

func (n nullScan[T]) Scan(src any) error {
	if src == nil {
		*n.dst = nil
		return nil
	}
	var v sql.Null[T]
	if err := v.Scan(src); err != nil {
		return err
	}
	*n.dst = &v.V
	return nil
}

func nullable[T any](dst **T) sql.Scanner { return nullScan[T]{dst: dst} }

// ptrArg turns a pointer field into a query argument, nil for NULL.
func ptrArg[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// textScan scans a nullable text column into a string, "" for NULL.
type textScan struct{ dst *string }

func (s textScan) Scan(src any) error {
	var v sql.NullString
	if err := v.Scan(src); err != nil {
		return err
	}
	*s.dst = v.String
	return nil
}

func text(dst *string) sql.Scanner { return textScan{dst: dst} }

// addressScan reads a comma-joined address column.
type addressScan struct{ dst *[]string }

func (s addressScan) Scan(src any) error {
	var v sql.NullString
	if err := v.Scan(src); err != nil {
		return err
	}
	*s.dst = domain.SplitAddresses(v.String)
	return nil
}

func addresses(dst *[]string) sql.Scanner { return addressScan{dst: dst} }

// refScan fills one half of an optional polymorphic reference. The
// reference is allocated on the first non-NULL half.
type refScan struct {
	dst    **domain.ModelRef
	isType bool
}

func (s refScan) Scan(src any) error {
	if src == nil {
		return nil
	}
	if *s.dst == nil {
		*s.dst = &domain.ModelRef{}
	}
	if s.isType {
		var v sql.NullString
		if err := v.Scan(src); err != nil {
			return err
		}
		(*s.dst).Type = domain.ModelType(v.String)
		return nil
	}
	var v sql.NullInt64
	if err := v.Scan(src); err != nil {
		return err
	}
	(*s.dst).ID = v.Int64
	return nil
}

// relatedTargets scans model_type and model_id into an optional reference.
func relatedTargets(dst **domain.ModelRef) []any {
	return []any{refScan{dst: dst, isType: true}, refScan{dst: dst}}
}

// relatedArgs is the inverse of relatedTargets.
func relatedArgs(ref *domain.ModelRef) []any {
	if ref == nil {
		return []any{nil, nil}
	}
	return []any{string(ref.Type), ref.ID}
}

// utc normalises timestamps before they are written.
func utc(t time.Time) time.Time { return t.UTC() }
