package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// OptionStore implements store.OptionStore over the CRM options table.
type OptionStore struct {
	db *sql.DB
}

var _ store.OptionStore = (*OptionStore)(nil)

// NewOptionStore creates an OptionStore.
func NewOptionStore(db *sql.DB) *OptionStore {
	return &OptionStore{db: db}
}

// Get implements store.OptionStore.
func (s *OptionStore) Get(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	rows, err := s.db.QueryContext(ctx, "SELECT name, value FROM options WHERE name = ANY($1)", keys)
	if err != nil {
		return nil, fmt.Errorf("read options: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var name string
		var value sql.NullString
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		out[name] = value.String
	}
	return out, rows.Err()
}
