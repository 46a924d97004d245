package domain

import "time"

// Model carries the columns every CRM table shares.
type Model struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Meta returns the shared columns so generic stores can set ids and
// timestamps without knowing the concrete entity.
func (m *Model) Meta() *Model { return m }

// Entity is implemented by pointers to every CRM record type.
type Entity interface {
	Meta() *Model
}

// DateLayout is the wire and storage layout for calendar dates.
const DateLayout = "2006-01-02"

// truncateDay drops the clock part of t in UTC.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
