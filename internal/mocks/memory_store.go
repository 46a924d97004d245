package mocks

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// MemoryStore is a thread-safe in-memory store.EntityStore. Records are
// listed in id order.
type MemoryStore[E domain.Entity] struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]E

	// Match decides whether e satisfies a filter key/value. When nil,
	// filters are ignored.
	Match func(e E, key, value string) bool
	// Err, when set, is returned by every method.
	Err error
	// Now stamps created and updated records.
	Now func() time.Time
}

var _ store.EntityStore[*domain.Note] = (*MemoryStore[*domain.Note])(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore[E domain.Entity]() *MemoryStore[E] {
	return &MemoryStore[E]{items: map[int64]E{}, Now: time.Now}
}

// Seed inserts records directly, assigning ids to those without one.
func (s *MemoryStore[E]) Seed(es ...E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range es {
		s.put(e)
	}
}

func (s *MemoryStore[E]) put(e E) {
	m := e.Meta()
	if m.ID == 0 {
		s.nextID++
		m.ID = s.nextID
	} else if m.ID > s.nextID {
		s.nextID = m.ID
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.Now().UTC()
		m.UpdatedAt = m.CreatedAt
	}
	s.items[m.ID] = e
}

// Len reports how many records are stored.
func (s *MemoryStore[E]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// All returns every record in id order.
func (s *MemoryStore[E]) All() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted()
}

func (s *MemoryStore[E]) sorted() []E {
	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.items[id])
	}
	return out
}

// List implements store.EntityStore.
func (s *MemoryStore[E]) List(_ context.Context, p store.ListParams) (*store.Page[E], error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []E
	for _, e := range s.sorted() {
		if s.matches(e, p) {
			matched = append(matched, e)
		}
	}
	return paginate(matched, p), nil
}

func (s *MemoryStore[E]) matches(e E, p store.ListParams) bool {
	if s.Match == nil {
		return true
	}
	for k, v := range p.Filters {
		if v != "" && !s.Match(e, k, v) {
			return false
		}
	}
	return true
}

func paginate[E any](all []E, p store.ListParams) *store.Page[E] {
	page := &store.Page[E]{Items: []E{}, Total: len(all), Page: p.Page, PerPage: p.PerPage}
	if p.PerPage <= 0 {
		page.Items = append(page.Items, all...)
		return page
	}
	start := min(p.Offset(), len(all))
	end := min(start+p.PerPage, len(all))
	page.Items = append(page.Items, all[start:end]...)
	return page
}

// Get implements store.EntityStore.
func (s *MemoryStore[E]) Get(_ context.Context, id int64) (E, error) {
	var zero E
	if s.Err != nil {
		return zero, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		return zero, store.ErrNotFound
	}
	return e, nil
}

// Create implements store.EntityStore.
func (s *MemoryStore[E]) Create(_ context.Context, e E) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e.Meta().ID = 0
	e.Meta().CreatedAt = time.Time{}
	s.put(e)
	return nil
}

// Update implements store.EntityStore.
func (s *MemoryStore[E]) Update(_ context.Context, e E) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m := e.Meta()
	if _, ok := s.items[m.ID]; !ok {
		return store.ErrNotFound
	}
	m.UpdatedAt = s.Now().UTC()
	s.items[m.ID] = e
	return nil
}

// Delete implements store.EntityStore.
func (s *MemoryStore[E]) Delete(_ context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// MatchInt64 is a Match helper comparing a filter value with an id field.
func MatchInt64(got int64, value string) bool {
	return strconv.FormatInt(got, 10) == value
}
