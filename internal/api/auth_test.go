package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/api/middleware"
	"github.com/phrazzld/crm-mobile-api/internal/config"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/mocks"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
)

type authFixture struct {
	tokens *mocks.TokenStore
	staff  *mocks.StaffStore
	srv    http.Handler
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{tokens: mocks.NewTokenStore(), staff: mocks.NewStaffStore()}
	f.staff.Seed(
		&domain.Staff{FirstName: "Ann", LastName: "Lee", Email: "ann@acme.test", PasswordHash: "correct horse", Active: true},
		&domain.Staff{FirstName: "Gone", Email: "gone@acme.test", PasswordHash: "pw", Active: false},
	)
	svc, err := auth.NewService(config.AuthConfig{
		JWTSecret:                  "auth-handler-test-secret-32-chars-long",
		AccessTokenLifetimeMinutes: 60,
		RefreshTokenLifetimeDays:   30,
	}, f.tokens, f.staff, &mocks.PasswordVerifier{}, nil)
	require.NoError(t, err)

	h := NewAuthHandler(testDeps(nil), svc)
	r := chi.NewRouter()
	h.PublicRoutes(r)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(svc).Authenticate)
		h.Routes(r)
	})
	f.srv = r
	return f
}

func (f *authFixture) login(t *testing.T, device string) (access, refresh string) {
	t.Helper()
	res := doRequest(t, f.srv, http.MethodPost, "/auth/login", map[string]any{
		"email": "ANN@acme.test", "password": "correct horse", "device_name": device,
	})
	require.Equal(t, http.StatusOK, res.Code)
	tokens := res.data(t)["tokens"].(map[string]any)
	return tokens["access_token"].(string), tokens["refresh_token"].(string)
}

func (f *authFixture) withToken(t *testing.T, method, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthHandler_Login(t *testing.T) {
	f := newAuthFixture(t)

	res := doRequest(t, f.srv, http.MethodPost, "/auth/login", map[string]any{
		"email": "ann@acme.test", "password": "correct horse", "device_name": "Pixel 8",
	})
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Login successful.", res.Message)
	data := res.data(t)
	user := data["user"].(map[string]any)
	assert.Equal(t, "ann@acme.test", user["email"])
	assert.NotContains(t, user, "password")
	tokens := data["tokens"].(map[string]any)
	assert.Equal(t, "Bearer", tokens["token_type"])
	assert.NotEmpty(t, tokens["access_token"])
	assert.Len(t, f.tokens.Live(1), 2)

	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{"wrong password", map[string]any{"email": "ann@acme.test", "password": "nope", "device_name": "d"},
			"These credentials do not match our records."},
		{"unknown email", map[string]any{"email": "who@acme.test", "password": "nope", "device_name": "d"},
			"These credentials do not match our records."},
		{"inactive staff", map[string]any{"email": "gone@acme.test", "password": "pw", "device_name": "d"},
			"This account has been deactivated."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := doRequest(t, f.srv, http.MethodPost, "/auth/login", tc.body)
			assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
			assert.Equal(t, []string{tc.message}, res.Errors["email"])
		})
	}

	t.Run("missing device name", func(t *testing.T) {
		res := doRequest(t, f.srv, http.MethodPost, "/auth/login", map[string]any{
			"email": "ann@acme.test", "password": "correct horse",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
		assert.Contains(t, res.Errors, "device_name")
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	f := newAuthFixture(t)
	access, refresh := f.login(t, "iPhone")

	res := doRequest(t, f.srv, http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": refresh})
	require.Equal(t, http.StatusOK, res.Code)
	assert.NotEqual(t, refresh, res.data(t)["refresh_token"])

	assert.Equal(t, http.StatusUnauthorized, f.withToken(t, http.MethodGet, "/auth/me", access),
		"the rotated pair is revoked")

	res = doRequest(t, f.srv, http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": refresh})
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code, "refresh tokens are single use")
	assert.Contains(t, res.Errors, "refresh_token")

	res = doRequest(t, f.srv, http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": access})
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
}

func TestAuthHandler_Session(t *testing.T) {
	f := newAuthFixture(t)
	phone, _ := f.login(t, "phone")
	tablet, _ := f.login(t, "tablet")

	assert.Equal(t, http.StatusOK, f.withToken(t, http.MethodGet, "/auth/me", phone))
	assert.Equal(t, http.StatusUnauthorized, f.withToken(t, http.MethodGet, "/auth/me", "garbage"))

	require.Equal(t, http.StatusOK, f.withToken(t, http.MethodPost, "/auth/logout", phone))
	assert.Equal(t, http.StatusUnauthorized, f.withToken(t, http.MethodGet, "/auth/me", phone))
	assert.Equal(t, http.StatusOK, f.withToken(t, http.MethodGet, "/auth/me", tablet),
		"logout only signs out the calling device")

	other, _ := f.login(t, "laptop")
	require.Equal(t, http.StatusOK, f.withToken(t, http.MethodPost, "/auth/logout-all", other))
	assert.Equal(t, http.StatusUnauthorized, f.withToken(t, http.MethodGet, "/auth/me", tablet))
	assert.Empty(t, f.tokens.Live(1))
}
