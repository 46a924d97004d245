package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/config"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/mocks"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// routable is satisfied by every handler in this package.
type routable interface {
	Routes(r chi.Router)
}

func testDeps(refs *mocks.ReferenceChecker) Deps {
	if refs == nil {
		refs = mocks.NewReferenceChecker()
	}
	return Deps{
		Binder:     request.NewBinder(refs),
		Pagination: config.PaginationConfig{DefaultPerPage: 15, MaxPerPage: 100},
		Clock:      func() time.Time { return testNow },
	}
}

// testServer mounts h and injects a session for staffID. A staffID of zero
// sends requests unauthenticated.
func testServer(h routable, staffID int64) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if staffID != 0 {
				s := &auth.Session{Staff: &domain.Staff{Model: domain.Model{ID: staffID}, Active: true}}
				req = req.WithContext(shared.WithSession(req.Context(), s))
			}
			next.ServeHTTP(w, req)
		})
	})
	h.Routes(r)
	return r
}

type testResponse struct {
	Code int
	shared.Envelope
	Raw map[string]any
}

func doRequest(t *testing.T, srv http.Handler, method, path string, body any) testResponse {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	res := testResponse{Code: rec.Code}
	if rec.Body.Len() > 0 {
		raw := rec.Body.Bytes()
		require.NoError(t, json.Unmarshal(raw, &res.Envelope), "body: %s", raw)
		require.NoError(t, json.Unmarshal(raw, &res.Raw))
	}
	return res
}

// data returns the response data as an object.
func (r testResponse) data(t *testing.T) map[string]any {
	t.Helper()
	m, ok := r.Raw["data"].(map[string]any)
	require.True(t, ok, "data is not an object: %v", r.Raw["data"])
	return m
}

// items returns the response data as a list of objects.
func (r testResponse) items(t *testing.T) []map[string]any {
	t.Helper()
	list, ok := r.Raw["data"].([]any)
	require.True(t, ok, "data is not a list: %v", r.Raw["data"])
	out := make([]map[string]any, len(list))
	for i, v := range list {
		out[i] = v.(map[string]any)
	}
	return out
}
