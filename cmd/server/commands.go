package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phrazzld/crm-mobile-api/internal/config"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
)

// newRootCmd builds the crm-mobile-api command tree. Configuration and
// logging are set up once before any subcommand runs.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		cfg        *config.Config
	)

	root := &cobra.Command{
		Use:          "crm-mobile-api",
		Short:        "REST API for the CRM mobile app",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadAppConfig(configPath)
			if err != nil {
				return err
			}
			if _, err := setupAppLogger(loaded); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml)")

	current := func() *config.Config { return cfg }
	root.AddCommand(serveCmd(current), migrateCmd(current), hashPasswordCmd())
	return root
}

func serveCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg())
		},
	}
}

func migrateCmd(cfg func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the mobile API database migrations",
	}
	for _, sub := range []struct{ name, short string }{
		{"up", "Apply all pending migrations"},
		{"down", "Roll back the latest migration"},
		{"status", "Show the state of every migration"},
	} {
		name := sub.name
		cmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := runMigrations(cmd.Context(), cfg(), name); err != nil {
					return fmt.Errorf("migrate %s: %w", name, err)
				}
				return nil
			},
		})
	}
	return cmd
}

// hashPasswordCmd prints a bcrypt hash for a password read from stdin, for
// seeding staff accounts. It needs no configuration.
func hashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Hash a staff password read from stdin",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return errors.New("password must not be empty")
			}
			hash, err := auth.HashPassword(password, cost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 0, "bcrypt cost (default 10)")
	return cmd
}

// serve wires the application and blocks until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config) error {
	logger := slog.Default()
	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, db, newPostgresStores(db, logger), nil)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
