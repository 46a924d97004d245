package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/mocks"
)

func TestCommonHandler(t *testing.T) {
	options := &mocks.OptionStore{Values: map[string]string{
		domain.OptCompanyName: "Acme Ltd",
		domain.OptCurrency:    "GBP",
		"smtp_password":       "hunter2",
	}}
	staff := mocks.NewStaffStore()
	staff.Seed(
		&domain.Staff{FirstName: "Ann", Email: "ann@acme.test", Active: true},
		&domain.Staff{FirstName: "Old", Email: "old@acme.test", Active: false},
	)
	stages := mocks.NewPipelineStageStore()
	stages.Seed(
		&domain.PipelineStage{PipelineID: 1, Name: "Won", Position: 3},
		&domain.PipelineStage{PipelineID: 1, Name: "New", Position: 1},
	)
	srv := testServer(NewCommonHandler(testDeps(nil), options, staff, stages), 7)

	t.Run("business info", func(t *testing.T) {
		res := doRequest(t, srv, http.MethodGet, "/common/business-info", nil)
		require.Equal(t, http.StatusOK, res.Code)
		data := res.data(t)
		assert.Equal(t, "Acme Ltd", data["company_name"])
		assert.Equal(t, "GBP", data["currency"])
		assert.Equal(t, "UTC", data["timezone"], "missing options fall back to defaults")
	})

	t.Run("options never leak private keys", func(t *testing.T) {
		res := doRequest(t, srv, http.MethodGet, "/common/options", nil)
		require.Equal(t, http.StatusOK, res.Code)
		data := res.data(t)
		assert.Equal(t, "Acme Ltd", data[domain.OptCompanyName])
		assert.NotContains(t, data, "smtp_password")
	})

	t.Run("staff lists active members only", func(t *testing.T) {
		res := doRequest(t, srv, http.MethodGet, "/common/staff?active=false", nil)
		require.Equal(t, http.StatusOK, res.Code)
		items := res.items(t)
		require.Len(t, items, 1)
		assert.Equal(t, "ann@acme.test", items[0]["email"])
	})

	t.Run("pipeline stages in board order", func(t *testing.T) {
		res := doRequest(t, srv, http.MethodGet, "/common/pipeline-stages", nil)
		require.Equal(t, http.StatusOK, res.Code)
		items := res.items(t)
		require.Len(t, items, 2)
		assert.Equal(t, "New", items[0]["name"])
	})

	t.Run("option store failure", func(t *testing.T) {
		broken := testServer(NewCommonHandler(testDeps(nil),
			&mocks.OptionStore{Err: errors.New("timeout")}, staff, stages), 7)
		res := doRequest(t, broken, http.MethodGet, "/common/business-info", nil)
		assert.Equal(t, http.StatusInternalServerError, res.Code)
		assert.NotContains(t, res.Message, "timeout")
	})
}

func TestDashboardHandler(t *testing.T) {
	running := int64(12)
	dashboard := &mocks.DashboardStore{Result: &domain.DashboardSummary{
		LeadsByStatus:  map[domain.LeadStatus]int{domain.LeadNew: 3, domain.LeadQualified: 2},
		MyOpenTasks:    4,
		PipelineValue:  decimal.NewFromInt(15000),
		RunningTimerID: &running,
	}}
	srv := testServer(NewDashboardHandler(testDeps(nil), dashboard), 7)

	res := doRequest(t, srv, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, res.Code)
	data := res.data(t)
	leads := data["leads"].(map[string]any)
	assert.EqualValues(t, 5, leads["total"])
	tasks := data["tasks"].(map[string]any)
	assert.EqualValues(t, 4, tasks["open"])

	res = doRequest(t, testServer(NewDashboardHandler(testDeps(nil), dashboard), 0), http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		db       Pinger
		status   int
		database string
	}{
		{"no database", nil, http.StatusOK, "skipped"},
		{"database up", pingerFunc(func(context.Context) error { return nil }), http.StatusOK, "ok"},
		{"database down", pingerFunc(func(context.Context) error { return errors.New("refused") }), http.StatusServiceUnavailable, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := doRequest(t, testServer(NewHealthHandler(tc.db), 0), http.MethodGet, "/health", nil)
			assert.Equal(t, tc.status, res.Code)
			if tc.database != "" {
				assert.Equal(t, tc.database, res.data(t)["database"])
			}
		})
	}
}
