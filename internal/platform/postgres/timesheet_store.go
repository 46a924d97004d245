package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// TimesheetStore implements store.TimesheetStore.
type TimesheetStore struct {
	*crudStore[*domain.Timesheet]
}

var _ store.TimesheetStore = (*TimesheetStore)(nil)

// NewTimesheetStore creates a TimesheetStore.
func NewTimesheetStore(db *sql.DB, log *slog.Logger) *TimesheetStore {
	return &TimesheetStore{crudStore: newCRUDStore(db, timesheetTable, log)}
}

// FindRunning implements store.TimesheetStore.
func (s *TimesheetStore) FindRunning(ctx context.Context, staffID int64) (*domain.Timesheet, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM timesheets WHERE staff_id = $1 AND end_time IS NULL ORDER BY start_time DESC LIMIT 1",
		s.table.selectList())
	ts := s.table.newE()
	err := s.db.QueryRowContext(ctx, query, staffID).Scan(s.table.scanTargets(ts)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no running timer", store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find running timesheet: %w", MapError(err))
	}
	return ts, nil
}
