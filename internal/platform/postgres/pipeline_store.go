package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// PipelineStageStore implements store.PipelineStageStore.
type PipelineStageStore struct {
	*crudStore[*domain.PipelineStage]
}

var _ store.PipelineStageStore = (*PipelineStageStore)(nil)

// NewPipelineStageStore creates a PipelineStageStore.
func NewPipelineStageStore(db *sql.DB, log *slog.Logger) *PipelineStageStore {
	return &PipelineStageStore{crudStore: newCRUDStore(db, pipelineStageTable, log)}
}

// All implements store.PipelineStageStore.
func (s *PipelineStageStore) All(ctx context.Context) ([]*domain.PipelineStage, error) {
	query := fmt.Sprintf("SELECT %s FROM pipeline_stages ORDER BY pipeline_id, position, id",
		s.table.selectList())
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pipeline stages: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	stages := []*domain.PipelineStage{}
	for rows.Next() {
		st := s.table.newE()
		if err := rows.Scan(s.table.scanTargets(st)...); err != nil {
			return nil, fmt.Errorf("scan pipeline stage: %w", err)
		}
		stages = append(stages, st)
	}
	return stages, rows.Err()
}
