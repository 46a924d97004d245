package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
)

// UnauthenticatedMessage is the body message for every 401 response.
const UnauthenticatedMessage = "Unauthenticated."

// Authenticator verifies an access token. *auth.Service implements it.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*auth.Session, error)
}

// AuthMiddleware requires a live access token on the routes it wraps.
type AuthMiddleware struct {
	auth Authenticator
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(a Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: a}
}

// Authenticate validates the bearer token from the Authorization header and
// stores the resulting session in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, UnauthenticatedMessage,
				errors.New("missing or malformed authorization header"))
			return
		}

		session, err := m.auth.Authenticate(r.Context(), token)
		if err != nil {
			if isTokenError(err) {
				var opts []shared.ResponseOption
				if errors.Is(err, auth.ErrRevokedToken) {
					opts = append(opts, shared.WithElevatedLogLevel())
				}
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, UnauthenticatedMessage, err, opts...)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"An unexpected error occurred", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithSession(r.Context(), session)))
	})
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func isTokenError(err error) bool {
	return errors.Is(err, auth.ErrInvalidToken) ||
		errors.Is(err, auth.ErrExpiredToken) ||
		errors.Is(err, auth.ErrWrongTokenType) ||
		errors.Is(err, auth.ErrRevokedToken) ||
		errors.Is(err, auth.ErrInactiveStaff)
}
