package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// StaffStore implements store.StaffStore.
type StaffStore struct {
	*crudStore[*domain.Staff]
}

var _ store.StaffStore = (*StaffStore)(nil)

// NewStaffStore creates a StaffStore.
func NewStaffStore(db *sql.DB, log *slog.Logger) *StaffStore {
	return &StaffStore{crudStore: newCRUDStore(db, staffTable, log)}
}

// GetByEmail implements store.StaffStore.
func (s *StaffStore) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	query := fmt.Sprintf("SELECT %s FROM staff WHERE LOWER(email) = LOWER($1)", s.table.selectList())
	st := &domain.Staff{}
	err := s.db.QueryRowContext(ctx, query, email).Scan(s.table.scanTargets(st)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrStaffNotFound
	}
	if err != nil {
		s.log(ctx).Error("failed to get staff by email", slog.String("error", err.Error()))
		return nil, fmt.Errorf("get staff by email: %w", MapError(err))
	}
	return st, nil
}

// TouchLastLogin implements store.StaffStore.
func (s *StaffStore) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE staff SET last_login_at = $1 WHERE id = $2", utc(at), id)
	if err != nil {
		return fmt.Errorf("touch staff last login: %w", MapError(err))
	}
	return CheckRowsAffected(res, "staff")
}
