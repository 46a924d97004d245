package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// DashboardStore implements store.DashboardStore.
type DashboardStore struct {
	db *sql.DB
}

var _ store.DashboardStore = (*DashboardStore)(nil)

// NewDashboardStore creates a DashboardStore.
func NewDashboardStore(db *sql.DB) *DashboardStore {
	return &DashboardStore{db: db}
}

const dashboardCountsSQL = `
	SELECT
		(SELECT COUNT(*) FROM tasks WHERE assigned_to = $1 AND status <> 'completed'),
		(SELECT COUNT(*) FROM tasks WHERE assigned_to = $1 AND status <> 'completed' AND due_date < $2::date),
		(SELECT COUNT(*) FROM tasks WHERE assigned_to = $1 AND status <> 'completed' AND due_date = $2::date),
		(SELECT COUNT(*) FROM tickets WHERE status <> 'closed'),
		(SELECT COUNT(*) FROM deals WHERE status = 'open'),
		(SELECT COALESCE(SUM(amount), 0) FROM deals WHERE status = 'open'),
		(SELECT COALESCE(SUM(d.amount * s.win_probability / 100.0), 0)
		 FROM deals d JOIN pipeline_stages s ON s.id = d.stage_id WHERE d.status = 'open'),
		(SELECT COUNT(*) FROM meetings WHERE organizer_id = $1 AND status = 'scheduled'
		 AND start_at BETWEEN $3 AND $3 + interval '7 days'),
		(SELECT COUNT(*) FROM reminders WHERE staff_id = $1 AND is_notified = false AND remind_at <= $3),
		(SELECT COUNT(*) FROM todos WHERE staff_id = $1 AND finished = false)`

// Summary implements store.DashboardStore.
func (s *DashboardStore) Summary(ctx context.Context, staffID int64, now time.Time) (*domain.DashboardSummary, error) {
	now = utc(now)
	sum := &domain.DashboardSummary{LeadsByStatus: map[domain.LeadStatus]int{}}

	err := s.db.QueryRowContext(ctx, dashboardCountsSQL, staffID, now.Format(domain.DateLayout), now).Scan(
		&sum.MyOpenTasks, &sum.MyOverdueTasks, &sum.MyTasksDueToday, &sum.OpenTickets,
		&sum.OpenDeals, &sum.PipelineValue, &sum.WeightedPipeline, &sum.UpcomingMeetings,
		&sum.DueReminders, &sum.UnfinishedTodos,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", MapError(err))
	}
	sum.WeightedPipeline = sum.WeightedPipeline.Round(2)

	rows, err := s.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM leads GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("dashboard leads: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var status domain.LeadStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan lead status count: %w", err)
		}
		sum.LeadsByStatus[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var timerID int64
	err = s.db.QueryRowContext(ctx,
		"SELECT id FROM timesheets WHERE staff_id = $1 AND end_time IS NULL ORDER BY start_time DESC LIMIT 1",
		staffID).Scan(&timerID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("dashboard timer: %w", MapError(err))
	default:
		sum.RunningTimerID = &timerID
	}
	return sum, nil
}
