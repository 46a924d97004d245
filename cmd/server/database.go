package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/url"

	"github.com/phrazzld/crm-mobile-api/internal/config"
	"github.com/phrazzld/crm-mobile-api/internal/platform/postgres"
)

// setupAppDatabase connects to the CRM database with the configured pool.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established",
		"host", databaseHost(cfg.Database.URL),
		"max_open_conns", cfg.Database.MaxOpenConns)
	return db, nil
}

// databaseHost extracts the host for logging without exposing credentials.
func databaseHost(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "unknown"
	}
	return u.Hostname()
}
