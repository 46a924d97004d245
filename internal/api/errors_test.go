package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"revoked token", auth.ErrRevokedToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"validation", request.NewValidationError("name", "bad"), http.StatusUnprocessableEntity},
		{"state", domain.NewStateError("status", "nope"), http.StatusUnprocessableEntity},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnprocessableEntity},
		{"inactive staff", auth.ErrInactiveStaff, http.StatusUnprocessableEntity},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden},
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get lead 4: %w", store.ErrNotFound), http.StatusNotFound},
		{"duplicate", store.ErrDuplicate, http.StatusConflict},
		{"conflict", store.ErrConflict, http.StatusConflict},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"token", auth.ErrExpiredToken, "Unauthenticated."},
		{"credentials", auth.ErrInvalidCredentials, "These credentials do not match our records."},
		{"inactive", auth.ErrInactiveStaff, "This account has been deactivated."},
		{"not found", fmt.Errorf("wrapped: %w", store.ErrNotFound), "Resource not found."},
		{"unauthorized", domain.ErrUnauthorized, "This action is unauthorized."},
		{"database detail", errors.New(`pq: relation "staff" does not exist`), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	t.Run("validation error lists fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleAPIError(rec, httptest.NewRequest(http.MethodPost, "/", nil),
			request.NewValidationError("email", "The email field is required."))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var env shared.Envelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
		assert.False(t, env.Success)
		assert.Equal(t, []string{"The email field is required."}, env.Errors["email"])
	})

	t.Run("state error becomes field error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleAPIError(rec, httptest.NewRequest(http.MethodPost, "/", nil),
			domain.NewStateError("status", "The lead has already been converted."))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var env shared.Envelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
		assert.Contains(t, env.Errors, "status")
	})

	t.Run("internal error hides detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleAPIError(rec, httptest.NewRequest(http.MethodGet, "/", nil),
			errors.New("connection refused to 10.0.0.4:5432"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "10.0.0.4")
	})
}
