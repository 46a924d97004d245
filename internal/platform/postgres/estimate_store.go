package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// EstimateStore implements store.EstimateStore. Line items live in
// estimate_items and invoice_items, keyed by their parent document.
type EstimateStore struct {
	*crudStore[*domain.Estimate]
}

var _ store.EstimateStore = (*EstimateStore)(nil)

// NewEstimateStore creates an EstimateStore.
func NewEstimateStore(db *sql.DB, log *slog.Logger) *EstimateStore {
	return &EstimateStore{crudStore: newCRUDStore(db, estimateTable, log)}
}

const itemColumns = "description, quantity, rate, tax_rate, unit, position"

func loadItems(ctx context.Context, q store.DBTX, itemTable, parentCol string, parentID int64) ([]domain.LineItem, error) {
	query := fmt.Sprintf("SELECT id, %s FROM %s WHERE %s = $1 ORDER BY position, id",
		itemColumns, itemTable, parentCol)
	rows, err := q.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", itemTable, MapError(err))
	}
	defer func() { _ = rows.Close() }()

	items := []domain.LineItem{}
	for rows.Next() {
		var it domain.LineItem
		if err := rows.Scan(&it.ID, &it.Description, &it.Quantity, &it.Rate,
			&it.TaxRate, text(&it.Unit), &it.Position); err != nil {
			return nil, fmt.Errorf("scan %s: %w", itemTable, err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// replaceItems deletes and reinserts a document's items, assigning
// positions in slice order.
func replaceItems(
	ctx context.Context,
	q store.DBTX,
	itemTable, parentCol string,
	parentID int64,
	items []domain.LineItem,
) error {
	if _, err := q.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE %s = $1", itemTable, parentCol), parentID); err != nil {
		return fmt.Errorf("clear %s: %w", itemTable, MapError(err))
	}
	insert := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		itemTable, parentCol, itemColumns)
	for i := range items {
		items[i].Position = i + 1
		it := &items[i]
		if err := q.QueryRowContext(ctx, insert, parentID, it.Description, it.Quantity,
			it.Rate, it.TaxRate, it.Unit, it.Position).Scan(&it.ID); err != nil {
			return fmt.Errorf("insert %s: %w", itemTable, MapError(err))
		}
	}
	return nil
}

// Get loads the estimate with its items.
func (s *EstimateStore) Get(ctx context.Context, id int64) (*domain.Estimate, error) {
	est, err := s.table.get(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if est.Items, err = loadItems(ctx, s.db, "estimate_items", "estimate_id", id); err != nil {
		return nil, err
	}
	return est, nil
}

// Create inserts the estimate and its items. Totals are recalculated from
// the items first.
func (s *EstimateStore) Create(ctx context.Context, est *domain.Estimate) error {
	est.Recalculate()
	now := s.clock()
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.table.insert(ctx, tx, est, now); err != nil {
			return err
		}
		return replaceItems(ctx, tx, "estimate_items", "estimate_id", est.ID, est.Items)
	})
}

// Update rewrites the estimate. Items are replaced only when est.Items is
// non-nil, so status-only updates keep the stored rows.
func (s *EstimateStore) Update(ctx context.Context, est *domain.Estimate) error {
	now := s.clock()
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if est.Items != nil {
			est.Recalculate()
		}
		if err := s.table.update(ctx, tx, est, now); err != nil {
			return err
		}
		if est.Items == nil {
			return nil
		}
		return replaceItems(ctx, tx, "estimate_items", "estimate_id", est.ID, est.Items)
	})
}

// ConvertToInvoice implements store.EstimateStore.
func (s *EstimateStore) ConvertToInvoice(ctx context.Context, est *domain.Estimate, inv *domain.Invoice) error {
	now := s.clock()
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := invoiceTable.insert(ctx, tx, inv, now); err != nil {
			return err
		}
		if err := replaceItems(ctx, tx, "invoice_items", "invoice_id", inv.ID, inv.Items); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE estimates SET status = $1, invoice_id = $2, updated_at = $3
			 WHERE id = $4 AND invoice_id IS NULL`,
			string(domain.EstimateInvoiced), inv.ID, utc(now), est.ID)
		if err != nil {
			return fmt.Errorf("mark estimate invoiced: %w", MapError(err))
		}
		if err := CheckRowsAffected(res, "estimate"); err != nil {
			return fmt.Errorf("%w: estimate %d already invoiced", store.ErrConflict, est.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	est.MarkInvoiced(inv.ID)
	est.UpdatedAt = utc(now)
	s.log(ctx).Info("estimate converted to invoice",
		slog.Int64("estimate_id", est.ID),
		slog.Int64("invoice_id", inv.ID))
	return nil
}
