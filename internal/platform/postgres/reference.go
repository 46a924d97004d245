package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// referenceTables are the tables foreign keys in requests may point at.
var referenceTables = map[string]bool{
	"staff": true, "leads": true, "clients": true, "deals": true,
	"pipeline_stages": true, "tasks": true, "tickets": true, "estimates": true,
	"proposals": true, "email_accounts": true, "chat_rooms": true,
	"email_messages": true,
}

// ReferenceChecker implements store.ReferenceChecker.
type ReferenceChecker struct {
	db store.DBTX
}

var _ store.ReferenceChecker = (*ReferenceChecker)(nil)

// NewReferenceChecker creates a ReferenceChecker.
func NewReferenceChecker(db *sql.DB) *ReferenceChecker {
	return &ReferenceChecker{db: db}
}

// Exists implements store.ReferenceChecker.
func (c *ReferenceChecker) Exists(ctx context.Context, table string, id int64) (bool, error) {
	if !referenceTables[table] {
		return false, fmt.Errorf("%w: %q", store.ErrUnknownTable, table)
	}
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", table)
	if err := c.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s reference: %w", table, MapError(err))
	}
	return exists, nil
}
