package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/crm-mobile-api/internal/config"
	"github.com/phrazzld/crm-mobile-api/internal/platform/postgres"
)

// runMigrations applies a goose command to the embedded migrations. All
// log lines of one run share a correlation id.
func runMigrations(ctx context.Context, cfg *config.Config, command string) error {
	logger := slog.Default().With(
		"correlation_id", uuid.NewString(),
		"component", "migrations",
		"command", command,
	)
	start := time.Now()

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close migration connection", "error", err)
		}
	}()

	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		logger.Error("migration failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("run goose %s: %w", command, err)
	}
	logger.Info("migration finished", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
