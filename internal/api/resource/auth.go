package resource

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
)

// TokenResource is an issued access/refresh pair.
type TokenResource struct {
	TokenType        string `json:"token_type"`
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int64  `json:"expires_in"`
	ExpiresAt        string `json:"expires_at"`
	RefreshExpiresAt string `json:"refresh_expires_at"`
}

// NewToken transforms a token pair. ExpiresIn counts seconds from now.
func NewToken(p *auth.TokenPair, now time.Time) TokenResource {
	in := int64(p.AccessExpiresAt.Sub(now).Seconds())
	if in < 0 {
		in = 0
	}
	return TokenResource{
		TokenType:        "Bearer",
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		ExpiresIn:        in,
		ExpiresAt:        timestamp(p.AccessExpiresAt),
		RefreshExpiresAt: timestamp(p.RefreshExpiresAt),
	}
}

// LoginResource is the body of a successful login.
type LoginResource struct {
	User   StaffResource `json:"user"`
	Tokens TokenResource `json:"tokens"`
}

// NewLogin transforms a login result.
func NewLogin(s *domain.Staff, p *auth.TokenPair, now time.Time) LoginResource {
	return LoginResource{User: NewStaff(s), Tokens: NewToken(p, now)}
}
