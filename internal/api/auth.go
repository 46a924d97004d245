package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/resource"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
)

// TokenService issues and revokes mobile tokens.
type TokenService interface {
	Login(ctx context.Context, email, password, device string) (*domain.Staff, *auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	Revoke(ctx context.Context, pairID uuid.UUID) error
	RevokeAll(ctx context.Context, staffID int64) (int64, error)
}

var _ TokenService = (*auth.Service)(nil)

// AuthHandler serves /auth.
type AuthHandler struct {
	base
	tokens TokenService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(d Deps, tokens TokenService) *AuthHandler {
	return &AuthHandler{base: newBase(d, "auth_handler"), tokens: tokens}
}

// PublicRoutes registers the routes that need no token.
func (h *AuthHandler) PublicRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
}

// Routes registers the routes that act on the current session.
func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/auth/logout", h.Logout)
	r.Post("/auth/logout-all", h.LogoutAll)
	r.Get("/auth/me", h.Me)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !h.bind(w, r, &req) {
		return
	}

	staff, pair, err := h.tokens.Login(r.Context(), req.Email, req.Password, req.DeviceName)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInactiveStaff):
		HandleAPIError(w, r, request.NewValidationError("email", GetSafeErrorMessage(err)))
		return
	case err != nil:
		HandleAPIError(w, r, fmt.Errorf("login: %w", err))
		return
	}

	h.log(r).Info("staff logged in",
		slog.Int64("staff_id", staff.ID),
		slog.String("device", req.DeviceName))
	shared.RespondWithMessage(w, r, http.StatusOK, "Login successful.",
		resource.NewLogin(staff, pair, h.now()))
}

// Refresh handles POST /auth/refresh. The old pair is revoked.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshRequest
	if !h.bind(w, r, &req) {
		return
	}

	pair, err := h.tokens.Refresh(r.Context(), req.RefreshToken)
	switch {
	case isTokenError(err):
		HandleAPIError(w, r, request.NewValidationError("refresh_token", "The refresh token is invalid or expired."))
		return
	case err != nil:
		HandleAPIError(w, r, fmt.Errorf("refresh token: %w", err))
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, "Token refreshed successfully.",
		resource.NewToken(pair, h.now()))
}

// Logout handles POST /auth/logout. Only the calling device is signed out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := h.tokens.Revoke(r.Context(), session.PairID); err != nil {
		HandleAPIError(w, r, fmt.Errorf("revoke token pair: %w", err))
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, "Logged out successfully.", nil)
}

// LogoutAll handles POST /auth/logout-all.
func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	n, err := h.tokens.RevokeAll(r.Context(), session.Staff.ID)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("revoke all tokens: %w", err))
		return
	}
	h.log(r).Info("staff logged out everywhere",
		slog.Int64("staff_id", session.Staff.ID),
		slog.Int64("revoked", n))
	shared.RespondWithMessage(w, r, http.StatusOK, "Logged out from all devices successfully.", nil)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, resource.NewStaff(session.Staff))
}

func (h *AuthHandler) session(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	s, ok := shared.SessionFrom(r.Context())
	if !ok || s.Staff == nil {
		HandleAPIError(w, r, auth.ErrInvalidToken)
		return nil, false
	}
	return s, true
}

func isTokenError(err error) bool {
	return errors.Is(err, auth.ErrInvalidToken) ||
		errors.Is(err, auth.ErrExpiredToken) ||
		errors.Is(err, auth.ErrWrongTokenType) ||
		errors.Is(err, auth.ErrRevokedToken) ||
		errors.Is(err, auth.ErrInactiveStaff)
}
