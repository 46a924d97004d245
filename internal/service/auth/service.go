package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/crm-mobile-api/internal/config"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/platform/logger"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// TokenPair is what login and refresh hand back to the device.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	PairID           uuid.UUID
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// Session is an authenticated request's identity.
type Session struct {
	Staff   *domain.Staff
	TokenID uuid.UUID
	PairID  uuid.UUID
	Device  string
}

// Service issues, refreshes, verifies and revokes mobile tokens.
type Service struct {
	signer     *Signer
	tokens     store.TokenStore
	staff      store.StaffStore
	passwords  PasswordVerifier
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      func() time.Time
	logger     *slog.Logger
}

// NewService creates a token Service from auth config.
func NewService(
	cfg config.AuthConfig,
	tokens store.TokenStore,
	staff store.StaffStore,
	passwords PasswordVerifier,
	log *slog.Logger,
) (*Service, error) {
	if tokens == nil || staff == nil || passwords == nil {
		return nil, errors.New("auth service dependencies cannot be nil")
	}
	signer, err := NewSigner(cfg.JWTSecret, time.Duration(cfg.ClockSkewSeconds)*time.Second)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		signer:     signer,
		tokens:     tokens,
		staff:      staff,
		passwords:  passwords,
		accessTTL:  time.Duration(cfg.AccessTokenLifetimeMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshTokenLifetimeDays) * 24 * time.Hour,
		clock:      time.Now,
		logger:     log.With(slog.String("component", "auth_service")),
	}, nil
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// Login checks credentials and issues a token pair for device.
func (s *Service) Login(ctx context.Context, email, password, device string) (*domain.Staff, *TokenPair, error) {
	staff, err := s.staff.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrStaffNotFound) {
		s.log(ctx).Warn("login failed: unknown email")
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up staff: %w", err)
	}
	if err := s.passwords.Compare(staff.PasswordHash, password); err != nil {
		s.log(ctx).Warn("login failed: wrong password", slog.Int64("staff_id", staff.ID))
		return nil, nil, ErrInvalidCredentials
	}
	if !staff.Active {
		s.log(ctx).Warn("login refused: inactive staff", slog.Int64("staff_id", staff.ID))
		return nil, nil, ErrInactiveStaff
	}

	pair, err := s.Issue(ctx, staff, device)
	if err != nil {
		return nil, nil, err
	}
	now := s.clock()
	if err := s.staff.TouchLastLogin(ctx, staff.ID, now); err != nil {
		s.log(ctx).Error("failed to record last login",
			slog.Int64("staff_id", staff.ID),
			slog.String("error", err.Error()))
	} else {
		at := now.UTC()
		staff.LastLoginAt = &at
	}
	return staff, pair, nil
}

// newPair builds the token rows and signed strings for one pair.
func (s *Service) newPair(staffID int64, device string, now time.Time) (*TokenPair, []*domain.MobileToken, error) {
	pairID := uuid.New()
	access := &domain.MobileToken{
		ID: uuid.New(), StaffID: staffID, DeviceName: device, Type: domain.TokenAccess,
		PairID: pairID, ExpiresAt: now.Add(s.accessTTL),
	}
	refresh := &domain.MobileToken{
		ID: uuid.New(), StaffID: staffID, DeviceName: device, Type: domain.TokenRefresh,
		PairID: pairID, ExpiresAt: now.Add(s.refreshTTL),
	}

	accessStr, err := s.signer.Sign(access, now)
	if err != nil {
		return nil, nil, err
	}
	refreshStr, err := s.signer.Sign(refresh, now)
	if err != nil {
		return nil, nil, err
	}
	return &TokenPair{
		AccessToken:      accessStr,
		RefreshToken:     refreshStr,
		PairID:           pairID,
		AccessExpiresAt:  access.ExpiresAt,
		RefreshExpiresAt: refresh.ExpiresAt,
	}, []*domain.MobileToken{access, refresh}, nil
}

// Issue revokes staff's live tokens for device and stores a new pair.
func (s *Service) Issue(ctx context.Context, staff *domain.Staff, device string) (*TokenPair, error) {
	now := s.clock()
	pair, rows, err := s.newPair(staff.ID, device, now)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.ReplaceDevice(ctx, staff.ID, device, now, rows...); err != nil {
		return nil, fmt.Errorf("failed to store tokens: %w", err)
	}
	s.log(ctx).Info("tokens issued",
		slog.Int64("staff_id", staff.ID),
		slog.String("device", device),
		slog.String("pair_id", pair.PairID.String()))
	return pair, nil
}

// Refresh exchanges a refresh token for a new pair on the same device. The
// old pair is revoked in the same transaction, so each refresh token works
// once.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.signer.Parse(ctx, refreshToken, domain.TokenRefresh)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	row, err := s.loadUsable(ctx, claims, now)
	if err != nil {
		return nil, err
	}
	staff, err := s.activeStaff(ctx, row.StaffID)
	if err != nil {
		return nil, err
	}

	pair, rows, err := s.newPair(staff.ID, row.DeviceName, now)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Rotate(ctx, row.PairID, now, rows...); err != nil {
		if errors.Is(err, store.ErrConflict) {
			s.log(ctx).Warn("refresh token reused",
				slog.Int64("staff_id", staff.ID),
				slog.String("pair_id", row.PairID.String()))
			return nil, ErrRevokedToken
		}
		return nil, fmt.Errorf("failed to rotate tokens: %w", err)
	}
	s.log(ctx).Info("tokens refreshed",
		slog.Int64("staff_id", staff.ID),
		slog.String("pair_id", pair.PairID.String()))
	return pair, nil
}

// Authenticate verifies an access token and returns the session behind it.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*Session, error) {
	claims, err := s.signer.Parse(ctx, accessToken, domain.TokenAccess)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	row, err := s.loadUsable(ctx, claims, now)
	if err != nil {
		return nil, err
	}
	staff, err := s.activeStaff(ctx, row.StaffID)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.TouchLastUsed(ctx, row.ID, now); err != nil {
		s.log(ctx).Error("failed to touch token",
			slog.String("token_id", row.ID.String()),
			slog.String("error", err.Error()))
	}
	return &Session{Staff: staff, TokenID: row.ID, PairID: row.PairID, Device: row.DeviceName}, nil
}

// loadUsable fetches the row behind claims and checks it is still live.
func (s *Service) loadUsable(ctx context.Context, claims *Claims, now time.Time) (*domain.MobileToken, error) {
	row, err := s.tokens.GetByID(ctx, claims.TokenID)
	if errors.Is(err, store.ErrTokenNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if row.StaffID != claims.StaffID || row.Type != claims.TokenType {
		return nil, ErrInvalidToken
	}
	if row.Revoked() {
		return nil, ErrRevokedToken
	}
	if row.Expired(now) {
		return nil, ErrExpiredToken
	}
	return row, nil
}

func (s *Service) activeStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	staff, err := s.staff.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	if !staff.Active {
		return nil, ErrInactiveStaff
	}
	return staff, nil
}

// Revoke logs out one device by revoking its token pair.
func (s *Service) Revoke(ctx context.Context, pairID uuid.UUID) error {
	if err := s.tokens.RevokePair(ctx, pairID, s.clock()); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

// RevokeAll logs a staff member out of every device.
func (s *Service) RevokeAll(ctx context.Context, staffID int64) (int64, error) {
	n, err := s.tokens.RevokeAll(ctx, staffID, s.clock())
	if err != nil {
		return 0, fmt.Errorf("failed to revoke tokens: %w", err)
	}
	s.log(ctx).Info("all tokens revoked",
		slog.Int64("staff_id", staffID),
		slog.Int64("revoked", n))
	return n, nil
}
