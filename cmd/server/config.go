package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/crm-mobile-api/internal/config"
)

// loadAppConfig loads configuration from path, or ./config.yaml when path
// is empty, with CRM_ environment variables taking precedence.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Debug("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_url_present", cfg.Database.URL != "",
		"features", fmt.Sprintf("chat=%t email=%t timesheets=%t",
			cfg.Features.Chat, cfg.Features.Email, cfg.Features.Timesheets))
	return cfg, nil
}
