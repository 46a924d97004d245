package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/platform/logger"
)

// Claims are the verified contents of a mobile token.
type Claims struct {
	StaffID   int64
	TokenID   uuid.UUID
	TokenType domain.TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type jwtClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Signer signs and verifies HS256 tokens.
type Signer struct {
	key       []byte
	clockSkew time.Duration
	timeFunc  func() time.Time
}

// NewSigner creates a Signer. The secret must be at least 32 bytes.
func NewSigner(secret string, clockSkew time.Duration) (*Signer, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	return &Signer{key: []byte(secret), clockSkew: clockSkew, timeFunc: time.Now}, nil
}

// Sign creates a token for the stored token row t.
func (s *Signer) Sign(t *domain.MobileToken, issuedAt time.Time) (string, error) {
	claims := jwtClaims{
		TokenType: string(t.Type),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(t.StaffID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(t.ExpiresAt),
			ID:        t.ID.String(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token with HMAC-SHA256: %w", t.Type, err)
	}
	return signed, nil
}

// Parse verifies tokenString and requires it to be of type want.
func (s *Signer) Parse(ctx context.Context, tokenString string, want domain.TokenType) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: expired", slog.String("token_type", string(want)))
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("token validation failed: malformed", slog.String("token_type", string(want)))
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("token validation failed: invalid signature", slog.String("token_type", string(want)))
		default:
			log.Debug("token validation failed",
				slog.String("token_type", string(want)),
				slog.String("error", err.Error()))
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if domain.TokenType(claims.TokenType) != want {
		log.Debug("token validation failed: wrong token type",
			slog.String("expected", string(want)),
			slog.String("actual", claims.TokenType))
		return nil, ErrWrongTokenType
	}

	staffID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || staffID <= 0 {
		return nil, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	out := &Claims{
		StaffID:   staffID,
		TokenID:   id,
		TokenType: want,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
