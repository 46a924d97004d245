package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/platform/logger"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// crudStore implements store.EntityStore over one table mapping.
type crudStore[E domain.Entity] struct {
	db     *sql.DB
	table  *table[E]
	logger *slog.Logger
	clock  func() time.Time
}

func newCRUDStore[E domain.Entity](db *sql.DB, t *table[E], log *slog.Logger) *crudStore[E] {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &crudStore[E]{
		db:     db,
		table:  t,
		logger: log.With(slog.String("component", t.name+"_store")),
		clock:  time.Now,
	}
}

func (s *crudStore[E]) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// List implements store.EntityStore.
func (s *crudStore[E]) List(ctx context.Context, p store.ListParams) (*store.Page[E], error) {
	return s.table.list(ctx, s.db, p)
}

// Get implements store.EntityStore.
func (s *crudStore[E]) Get(ctx context.Context, id int64) (E, error) {
	return s.table.get(ctx, s.db, id)
}

// Create implements store.EntityStore.
func (s *crudStore[E]) Create(ctx context.Context, e E) error {
	if err := s.table.insert(ctx, s.db, e, s.clock()); err != nil {
		s.log(ctx).Debug("insert failed",
			slog.String("table", s.table.name),
			slog.String("error", err.Error()))
		return err
	}
	s.log(ctx).Debug("record created",
		slog.String("table", s.table.name),
		slog.Int64("id", e.Meta().ID))
	return nil
}

// Update implements store.EntityStore.
func (s *crudStore[E]) Update(ctx context.Context, e E) error {
	return s.table.update(ctx, s.db, e, s.clock())
}

// Delete implements store.EntityStore.
func (s *crudStore[E]) Delete(ctx context.Context, id int64) error {
	if err := s.table.delete(ctx, s.db, id); err != nil {
		return err
	}
	s.log(ctx).Debug("record deleted",
		slog.String("table", s.table.name),
		slog.Int64("id", id))
	return nil
}
