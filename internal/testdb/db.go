package testdb

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/phrazzld/crm-mobile-api/internal/redact"
)

// Open connects to the test database and closes it when the test ends.
// Without a configured URL the test is skipped, or failed in CI.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := DatabaseURL(slog.Default())
	if url == "" {
		if IsCI() {
			t.Fatalf("%s must be set in CI", EnvTestDatabaseURL)
		}
		t.Skipf("%s not set", EnvTestDatabaseURL)
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("open test database: %s", redact.Error(err))
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("ping test database %s: %s", redact.String(url), redact.Error(err))
	}
	return db
}

// WithTx runs fn inside a transaction that is always rolled back, so the
// test leaves no rows behind.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin test transaction: %s", redact.Error(err))
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Errorf("roll back test transaction: %s", redact.Error(err))
		}
	}()

	fn(t, tx)
}
