package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// TokenPruner deletes mobile tokens that stopped being useful before cutoff.
// store.TokenStore satisfies it.
type TokenPruner interface {
	PruneExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// TokenPruneTask removes tokens that expired or were revoked more than
// retention ago. Recently dead tokens are kept so a replayed refresh token
// is still recognised and rejected as revoked.
type TokenPruneTask struct {
	tokens    TokenPruner
	retention time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

var _ Task = (*TokenPruneTask)(nil)

// NewTokenPruneTask creates a TokenPruneTask.
func NewTokenPruneTask(tokens TokenPruner, retention time.Duration, logger *slog.Logger) *TokenPruneTask {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenPruneTask{
		tokens:    tokens,
		retention: retention,
		now:       time.Now,
		logger:    logger.With(slog.String("task_type", TaskTypeTokenPrune)),
	}
}

// Type implements Task.
func (t *TokenPruneTask) Type() string {
	return TaskTypeTokenPrune
}

// Execute implements Task.
func (t *TokenPruneTask) Execute(ctx context.Context) error {
	cutoff := t.now().UTC().Add(-t.retention)
	n, err := t.tokens.PruneExpired(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("prune tokens before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	if n > 0 {
		t.logger.Info("pruned mobile tokens",
			slog.Int64("deleted", n),
			slog.Time("cutoff", cutoff))
	}
	return nil
}
