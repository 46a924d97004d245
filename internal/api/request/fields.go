package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// timestampLayouts are accepted for date-time fields, most specific first.
var timestampLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// date parses a field already checked by the "date" rule.
func date(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

// timestamp parses a field already checked by the "timestamp" rule.
func timestamp(s string) time.Time {
	t, _ := parseTimestamp(s)
	return t
}

// datePtr parses an optional date, "" meaning none.
func datePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := date(*s)
	return &t
}

func timestampPtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := timestamp(*s)
	return &t
}

// set copies src into dst when the field was sent.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// setAs copies a sent field into a named type such as a status enum.
func setAs[T ~string](dst *T, src *string) {
	if src != nil {
		*dst = T(*src)
	}
}

// setDate replaces an optional date when the field was sent. An empty
// string clears it.
func setDate(dst **time.Time, src *string) {
	if src != nil {
		*dst = datePtr(src)
	}
}

func setTimestamp(dst **time.Time, src *string) {
	if src != nil {
		*dst = timestampPtr(src)
	}
}

// setID replaces an optional foreign key when sent. Zero clears it.
func setID(dst **int64, src *int64) {
	if src == nil {
		return
	}
	if *src == 0 {
		*dst = nil
		return
	}
	id := *src
	*dst = &id
}

// optionalID converts a create request's optional key, zero meaning none.
func optionalID(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

// ref builds a Reference for an optional key.
func ref(field, table string, id *int64) Reference {
	if id == nil {
		return Reference{Field: field, Table: table}
	}
	return Reference{Field: field, Table: table, ID: *id}
}

// modelRef builds the existence check for a polymorphic reference.
func modelRef(modelType string, id int64) Reference {
	return Reference{Field: "model_id", Table: domain.ModelType(modelType).Table(), ID: id}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
