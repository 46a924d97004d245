package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// GoalStore implements store.GoalStore.
type GoalStore struct {
	*crudStore[*domain.Goal]
}

var _ store.GoalStore = (*GoalStore)(nil)

// NewGoalStore creates a GoalStore.
func NewGoalStore(db *sql.DB, log *slog.Logger) *GoalStore {
	return &GoalStore{crudStore: newCRUDStore(db, goalTable, log)}
}

// goalMetrics holds the aggregate behind each goal type. Each query takes
// start date, end date and an optional staff id, in that order.
var goalMetrics = map[domain.GoalType]string{
	domain.GoalTotalIncome: `SELECT COALESCE(SUM(total), 0) FROM invoices
		WHERE date BETWEEN $1 AND $2
		AND ($3::bigint IS NULL OR estimate_id IN (SELECT id FROM estimates WHERE created_by = $3))`,
	domain.GoalNewClients: `SELECT COUNT(*) FROM clients
		WHERE created_at::date BETWEEN $1 AND $2
		AND ($3::bigint IS NULL OR lead_id IN (SELECT id FROM leads WHERE assigned_to = $3))`,
	domain.GoalConvertedLeads: `SELECT COUNT(*) FROM leads
		WHERE status = 'converted' AND converted_at::date BETWEEN $1 AND $2
		AND ($3::bigint IS NULL OR assigned_to = $3)`,
	domain.GoalWonDeals: `SELECT COUNT(*) FROM deals
		WHERE status = 'won' AND closed_at::date BETWEEN $1 AND $2
		AND ($3::bigint IS NULL OR owner_id = $3)`,
	domain.GoalClosedTickets: `SELECT COUNT(*) FROM tickets
		WHERE status = 'closed' AND updated_at::date BETWEEN $1 AND $2
		AND ($3::bigint IS NULL OR assigned_to = $3)`,
}

// Achieved implements store.GoalStore.
func (s *GoalStore) Achieved(ctx context.Context, goal *domain.Goal) (decimal.Decimal, error) {
	query, ok := goalMetrics[goal.Type]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown goal type %q", store.ErrInvalidEntity, goal.Type)
	}
	var achieved decimal.Decimal
	err := s.db.QueryRowContext(ctx, query, goal.StartDate, goal.EndDate, ptrArg(goal.StaffID)).
		Scan(&achieved)
	if err != nil {
		return decimal.Zero, fmt.Errorf("measure goal %d: %w", goal.ID, MapError(err))
	}
	return achieved, nil
}
