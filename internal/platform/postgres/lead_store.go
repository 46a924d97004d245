package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// LeadStore implements store.LeadStore.
type LeadStore struct {
	*crudStore[*domain.Lead]
}

var _ store.LeadStore = (*LeadStore)(nil)

// NewLeadStore creates a LeadStore.
func NewLeadStore(db *sql.DB, log *slog.Logger) *LeadStore {
	return &LeadStore{crudStore: newCRUDStore(db, leadTable, log)}
}

// Convert implements store.LeadStore. The lead update is conditional on the
// lead not having been converted already, so two concurrent conversions
// cannot both create a client.
func (s *LeadStore) Convert(
	ctx context.Context,
	lead *domain.Lead,
	client *domain.Client,
	now time.Time,
) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := clientTable.insert(ctx, tx, client, now); err != nil {
			return err
		}
		lead.MarkConverted(client.ID, utc(now))
		res, err := tx.ExecContext(ctx,
			`UPDATE leads SET status = $1, client_id = $2, converted_at = $3, updated_at = $3
			 WHERE id = $4 AND client_id IS NULL`,
			string(lead.Status), client.ID, utc(now), lead.ID)
		if err != nil {
			return fmt.Errorf("mark lead converted: %w", MapError(err))
		}
		if err := CheckRowsAffected(res, "lead"); err != nil {
			return fmt.Errorf("%w: lead %d already converted", store.ErrConflict, lead.ID)
		}
		lead.UpdatedAt = utc(now)
		return nil
	})
	if err != nil {
		return err
	}
	s.log(ctx).Info("lead converted",
		slog.Int64("lead_id", lead.ID),
		slog.Int64("client_id", client.ID))
	return nil
}
