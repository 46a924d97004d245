package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/config"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/mocks"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

type fixture struct {
	svc    *Service
	tokens *mocks.TokenStore
	staff  *mocks.StaffStore
	now    time.Time
	member *domain.Staff
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		tokens: mocks.NewTokenStore(),
		staff:  mocks.NewStaffStore(),
		now:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	f.member = &domain.Staff{FirstName: "Lin", Email: "lin@example.com", PasswordHash: "pw", Active: true}
	f.staff.Seed(f.member)

	svc, err := NewService(config.AuthConfig{
		JWTSecret:                  testSecret,
		AccessTokenLifetimeMinutes: 60,
		RefreshTokenLifetimeDays:   30,
		ClockSkewSeconds:           0,
	}, f.tokens, f.staff, &mocks.PasswordVerifier{}, nil)
	require.NoError(t, err)
	svc.clock = func() time.Time { return f.now }
	svc.signer.timeFunc = func() time.Time { return f.now }
	f.svc = svc
	return f
}

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

func TestNewService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewService(config.AuthConfig{JWTSecret: "short"},
		mocks.NewTokenStore(), mocks.NewStaffStore(), &mocks.PasswordVerifier{}, nil)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("issues a pair with configured lifetimes", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		staff, pair, err := f.svc.Login(context.Background(), " LIN@example.com ", "pw", "iPhone 15")
		require.NoError(t, err)
		assert.Equal(t, f.member.ID, staff.ID)
		assert.Equal(t, f.now.Add(60*time.Minute), pair.AccessExpiresAt)
		assert.Equal(t, f.now.Add(30*24*time.Hour), pair.RefreshExpiresAt)
		assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
		require.NotNil(t, staff.LastLoginAt)
		assert.Len(t, f.tokens.Live(f.member.ID), 2)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, _, err := f.svc.Login(context.Background(), "lin@example.com", "nope", "iPhone")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, _, err := f.svc.Login(context.Background(), "ghost@example.com", "pw", "iPhone")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive staff", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.member.Active = false

		_, _, err := f.svc.Login(context.Background(), "lin@example.com", "pw", "iPhone")
		assert.ErrorIs(t, err, ErrInactiveStaff)
	})

	t.Run("second login on the same device revokes the first pair", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		ctx := context.Background()

		_, first, err := f.svc.Login(ctx, "lin@example.com", "pw", "iPad")
		require.NoError(t, err)
		_, _, err = f.svc.Login(ctx, "lin@example.com", "pw", "iPad")
		require.NoError(t, err)
		_, _, err = f.svc.Login(ctx, "lin@example.com", "pw", "Pixel")
		require.NoError(t, err)

		_, err = f.svc.Authenticate(ctx, first.AccessToken)
		assert.ErrorIs(t, err, ErrRevokedToken)
		assert.Len(t, f.tokens.Live(f.member.ID), 4)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	_, pair, err := f.svc.Login(ctx, "lin@example.com", "pw", "iPhone")
	require.NoError(t, err)

	session, err := f.svc.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, f.member.ID, session.Staff.ID)
	assert.Equal(t, pair.PairID, session.PairID)
	assert.Equal(t, "iPhone", session.Device)

	row, err := f.tokens.GetByID(ctx, session.TokenID)
	require.NoError(t, err)
	require.NotNil(t, row.LastUsedAt)

	_, err = f.svc.Authenticate(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = f.svc.Authenticate(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	f.advance(61 * time.Minute)
	_, err = f.svc.Authenticate(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestAuthenticate_RejectsForeignSignature(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	other, err := NewSigner("another-secret-that-is-32-characters-long", 0)
	require.NoError(t, err)
	forged, err := other.Sign(&domain.MobileToken{
		StaffID: f.member.ID, Type: domain.TokenAccess, ExpiresAt: f.now.Add(time.Hour),
	}, f.now)
	require.NoError(t, err)

	_, err = f.svc.Authenticate(context.Background(), forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"type": "access", "sub": "1", "exp": f.now.Add(time.Hour).Unix(),
	})
	s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = f.svc.Authenticate(context.Background(), s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	_, pair, err := f.svc.Login(ctx, "lin@example.com", "pw", "iPhone")
	require.NoError(t, err)

	f.advance(10 * time.Minute)
	next, err := f.svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.PairID, next.PairID)

	_, err = f.svc.Authenticate(ctx, next.AccessToken)
	assert.NoError(t, err)

	_, err = f.svc.Authenticate(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrRevokedToken, "old access token dies with its pair")

	_, err = f.svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrRevokedToken, "refresh tokens are single use")

	_, err = f.svc.Refresh(ctx, next.AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestRefresh_Expired(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	_, pair, err := f.svc.Login(ctx, "lin@example.com", "pw", "iPhone")
	require.NoError(t, err)

	f.advance(31 * 24 * time.Hour)
	_, err = f.svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRevoke(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	_, a, err := f.svc.Login(ctx, "lin@example.com", "pw", "iPhone")
	require.NoError(t, err)
	_, b, err := f.svc.Login(ctx, "lin@example.com", "pw", "iPad")
	require.NoError(t, err)

	require.NoError(t, f.svc.Revoke(ctx, a.PairID))
	_, err = f.svc.Authenticate(ctx, a.AccessToken)
	assert.ErrorIs(t, err, ErrRevokedToken)
	_, err = f.svc.Authenticate(ctx, b.AccessToken)
	assert.NoError(t, err)

	n, err := f.svc.RevokeAll(ctx, f.member.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	_, err = f.svc.Authenticate(ctx, b.AccessToken)
	assert.ErrorIs(t, err, ErrRevokedToken)
}

func TestStoreFailuresAreWrapped(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	boom := errors.New("db down")
	f.tokens.Err = boom

	_, _, err := f.svc.Login(context.Background(), "lin@example.com", "pw", "iPhone")
	assert.ErrorIs(t, err, boom)
}
