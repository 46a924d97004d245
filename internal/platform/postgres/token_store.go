package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/platform/logger"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// TokenStore implements store.TokenStore over mobile_api_tokens.
type TokenStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.TokenStore = (*TokenStore)(nil)

// NewTokenStore creates a TokenStore.
func NewTokenStore(db *sql.DB, log *slog.Logger) *TokenStore {
	if log == nil {
		log = slog.Default()
	}
	return &TokenStore{db: db, logger: log.With(slog.String("component", "token_store"))}
}

const tokenColumns = "id, staff_id, device_name, token_type, pair_id, expires_at, revoked_at, last_used_at, created_at"

func insertTokens(ctx context.Context, q store.DBTX, now time.Time, tokens []*domain.MobileToken) error {
	for _, t := range tokens {
		t.CreatedAt = utc(now)
		_, err := q.ExecContext(ctx,
			`INSERT INTO mobile_api_tokens (id, staff_id, device_name, token_type, pair_id, expires_at, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, t.StaffID, t.DeviceName, string(t.Type), t.PairID, utc(t.ExpiresAt), t.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert %s token: %w", t.Type, MapError(err))
		}
	}
	return nil
}

// ReplaceDevice implements store.TokenStore.
func (s *TokenStore) ReplaceDevice(
	ctx context.Context,
	staffID int64,
	device string,
	now time.Time,
	tokens ...*domain.MobileToken,
) error {
	var revoked int64
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE mobile_api_tokens SET revoked_at = $1
			 WHERE staff_id = $2 AND device_name = $3 AND revoked_at IS NULL`,
			utc(now), staffID, device)
		if err != nil {
			return fmt.Errorf("revoke device tokens: %w", MapError(err))
		}
		revoked, _ = res.RowsAffected()
		return insertTokens(ctx, tx, now, tokens)
	})
	if err != nil {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("device tokens replaced",
		slog.Int64("staff_id", staffID),
		slog.Int64("revoked", revoked))
	return nil
}

// Rotate implements store.TokenStore.
func (s *TokenStore) Rotate(ctx context.Context, oldPair uuid.UUID, now time.Time, tokens ...*domain.MobileToken) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE mobile_api_tokens SET revoked_at = $1 WHERE pair_id = $2 AND revoked_at IS NULL",
			utc(now), oldPair)
		if err != nil {
			return fmt.Errorf("revoke token pair: %w", MapError(err))
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("revoke token pair: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: token pair %s already revoked", store.ErrConflict, oldPair)
		}
		return insertTokens(ctx, tx, now, tokens)
	})
}

// GetByID implements store.TokenStore.
func (s *TokenStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.MobileToken, error) {
	t := &domain.MobileToken{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+tokenColumns+" FROM mobile_api_tokens WHERE id = $1", id).Scan(
		&t.ID, &t.StaffID, &t.DeviceName, &t.Type, &t.PairID, &t.ExpiresAt,
		nullable(&t.RevokedAt), nullable(&t.LastUsedAt), &t.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get token: %w", MapError(err))
	}
	return t, nil
}

// RevokePair implements store.TokenStore.
func (s *TokenStore) RevokePair(ctx context.Context, pairID uuid.UUID, now time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE mobile_api_tokens SET revoked_at = $1 WHERE pair_id = $2 AND revoked_at IS NULL",
		utc(now), pairID)
	if err != nil {
		return fmt.Errorf("revoke token pair: %w", MapError(err))
	}
	return nil
}

// RevokeAll implements store.TokenStore.
func (s *TokenStore) RevokeAll(ctx context.Context, staffID int64, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE mobile_api_tokens SET revoked_at = $1 WHERE staff_id = $2 AND revoked_at IS NULL",
		utc(now), staffID)
	if err != nil {
		return 0, fmt.Errorf("revoke staff tokens: %w", MapError(err))
	}
	return res.RowsAffected()
}

// TouchLastUsed implements store.TokenStore.
func (s *TokenStore) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE mobile_api_tokens SET last_used_at = $1 WHERE id = $2", utc(at), id)
	if err != nil {
		return fmt.Errorf("touch token: %w", MapError(err))
	}
	return nil
}

// PruneExpired implements store.TokenStore.
func (s *TokenStore) PruneExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM mobile_api_tokens WHERE expires_at < $1 OR revoked_at < $1",
		utc(cutoff))
	if err != nil {
		return 0, fmt.Errorf("prune tokens: %w", MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune tokens: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("tokens pruned",
		slog.Int64("deleted", n))
	return n, nil
}
