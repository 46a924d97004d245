package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes short-lived access tokens from refresh tokens.
type TokenType string

// Token types.
const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// MobileToken is the persisted record behind one issued bearer token. The ID
// equals the JWT "jti" claim. Access and refresh tokens issued together share
// a PairID so they can be revoked as a unit.
type MobileToken struct {
	ID         uuid.UUID
	StaffID    int64
	DeviceName string
	Type       TokenType
	PairID     uuid.UUID
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

// Revoked reports whether the token has been revoked.
func (t *MobileToken) Revoked() bool {
	return t.RevokedAt != nil
}

// Expired reports whether the token is past its expiry at now.
func (t *MobileToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Usable reports whether the token is neither revoked nor expired.
func (t *MobileToken) Usable(now time.Time) bool {
	return !t.Revoked() && !t.Expired(now)
}
