package resource

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func date(t time.Time) string {
	return t.UTC().Format(domain.DateLayout)
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := date(*t)
	return &s
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func timestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := timestamp(*t)
	return &s
}

// Related is a polymorphic pointer to another CRM record.
type Related struct {
	Type string `json:"model_type"`
	ID   int64  `json:"model_id"`
}

func related(ref *domain.ModelRef) *Related {
	if ref == nil {
		return nil
	}
	return &Related{Type: string(ref.Type), ID: ref.ID}
}

// Meta is the pagination block of a list response.
type Meta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// Collection is a transformed page of records.
type Collection[T any] struct {
	Items []T
	Meta  Meta
}

// NewCollection transforms every item of page with fn.
func NewCollection[E, T any](page *store.Page[E], fn func(E) T) Collection[T] {
	items := make([]T, len(page.Items))
	for i, e := range page.Items {
		items[i] = fn(e)
	}
	return Collection[T]{Items: items, Meta: PageMeta(page)}
}

// PageMeta builds the pagination block for page.
func PageMeta[E any](page *store.Page[E]) Meta {
	return Meta{
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		Total:       page.Total,
		LastPage:    page.LastPage(),
	}
}

// List transforms a plain slice.
func List[E, T any](in []E, fn func(E) T) []T {
	out := make([]T, len(in))
	for i, e := range in {
		out[i] = fn(e)
	}
	return out
}
