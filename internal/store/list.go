package store

import "strings"

// ListParams describes one page of a filtered, sorted listing.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	// Filters are equality filters keyed by column name. Implementations
	// ignore keys outside their whitelist.
	Filters map[string]string
	Sort    string
	Desc    bool
}

// Normalize clamps paging to [1, maxPerPage], substituting defaultPerPage
// when no page size was requested.
func (p ListParams) Normalize(defaultPerPage, maxPerPage int) ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if maxPerPage > 0 && p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	p.Search = strings.TrimSpace(p.Search)
	return p
}

// Offset is the number of rows before the requested page.
func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Filter returns the value of an equality filter.
func (p ListParams) Filter(key string) (string, bool) {
	v, ok := p.Filters[key]
	return v, ok && v != ""
}

// WithFilter returns a copy of p with key set to value.
func (p ListParams) WithFilter(key, value string) ListParams {
	filters := make(map[string]string, len(p.Filters)+1)
	for k, v := range p.Filters {
		filters[k] = v
	}
	filters[key] = value
	p.Filters = filters
	return p
}

// Page is one page of results plus the total row count.
type Page[T any] struct {
	Items   []T
	Total   int
	Page    int
	PerPage int
}

// LastPage is the number of the final page, at least 1.
func (p *Page[T]) LastPage() int {
	if p.PerPage < 1 || p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}
