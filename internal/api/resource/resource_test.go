package resource

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

var now = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

// jsonKeys renders v and returns its top-level object keys.
func jsonKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestStaff_NoCredentials(t *testing.T) {
	s := &domain.Staff{
		Model:        domain.Model{ID: 3, CreatedAt: now},
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@crm.test",
		PasswordHash: "$2a$10$secret",
		Active:       true,
	}

	out := jsonKeys(t, NewStaff(s))
	assert.Equal(t, "Ada Lovelace", out["full_name"])
	assert.Nil(t, out["last_login_at"])
	for k, v := range out {
		assert.NotContains(t, strings.ToLower(k), "password")
		if str, ok := v.(string); ok {
			assert.NotContains(t, str, "$2a$")
		}
	}
}

func TestEmailAccount_NoPassword(t *testing.T) {
	a := &domain.EmailAccount{Model: domain.Model{ID: 1}, Email: "me@crm.test", Password: "hunter2"}

	raw, err := json.Marshal(NewEmailAccount(a))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hunter2")
	assert.Contains(t, string(raw), `"has_password":true`)
}

func TestLead_Shape(t *testing.T) {
	l := &domain.Lead{
		Model:     domain.Model{ID: 9, CreatedAt: now, UpdatedAt: now},
		Name:      "Jane",
		Status:    domain.LeadConverted,
		Value:     decimal.RequireFromString("1500"),
		ClientID:  ptr(int64(4)),
	}

	out := jsonKeys(t, NewLead(l))
	assert.Equal(t, "1500.00", out["lead_value"])
	assert.Equal(t, true, out["is_converted"])
	assert.Equal(t, "2026-05-20T12:00:00Z", out["created_at"])
	assert.EqualValues(t, 4, out["client_id"])
	assert.Len(t, out, 21)
}

func ptr[T any](v T) *T { return &v }

func TestDealWithStage_WeightedAmount(t *testing.T) {
	d := &domain.Deal{Amount: decimal.NewFromInt(1000), StageID: 2, Status: domain.DealOpen}
	stage := &domain.PipelineStage{Model: domain.Model{ID: 2}, Name: "Proposal", WinProbability: 40}

	r := NewDealWithStage(d, stage)
	require.NotNil(t, r.WeightedAmount)
	assert.Equal(t, "400.00", *r.WeightedAmount)
	assert.Equal(t, "Proposal", r.Stage.Name)

	plain := jsonKeys(t, NewDeal(d))
	assert.NotContains(t, plain, "stage")
	assert.NotContains(t, plain, "weighted_amount")
}

func TestTask_DatesAndOverdue(t *testing.T) {
	due := time.Date(2026, 5, 19, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{Name: "x", Status: domain.TaskInProgress, DueDate: &due,
		Related: &domain.ModelRef{Type: domain.ModelLead, ID: 5}}

	r := NewTask(task, now)
	assert.Equal(t, "2026-05-19", *r.DueDate)
	assert.True(t, r.IsOverdue)
	assert.Equal(t, &Related{Type: "lead", ID: 5}, r.Related)
	assert.Nil(t, r.StartDate)
}

func TestTimesheet_RunningDuration(t *testing.T) {
	ts := &domain.Timesheet{StartTime: now.Add(-90 * time.Minute)}

	r := NewTimesheet(ts, now)
	assert.True(t, r.IsRunning)
	assert.Equal(t, int64(5400), r.DurationSeconds)
	assert.Nil(t, r.EndTime)
}

func TestEstimate_ItemsAndMoney(t *testing.T) {
	e := &domain.Estimate{
		Date:  now,
		Items: []domain.LineItem{{Description: "Design", Quantity: decimal.NewFromInt(3), Rate: decimal.RequireFromString("19.999")}},
	}
	e.Recalculate()

	full := NewEstimate(e, now)
	require.Len(t, full.Items, 1)
	assert.Equal(t, "60.00", full.Items[0].Amount)
	assert.Equal(t, "20.00", full.Items[0].Rate)
	assert.Equal(t, "2026-05-20", full.Date)

	summary := jsonKeys(t, NewEstimateSummary(e, now))
	assert.NotContains(t, summary, "items")
}

func TestGoal_Progress(t *testing.T) {
	g := &domain.Goal{Target: decimal.NewFromInt(8), StartDate: now, EndDate: now}

	r := NewGoal(g, decimal.NewFromInt(6))
	assert.Equal(t, 75, r.Progress)
	assert.False(t, r.IsAchieved)
	assert.Equal(t, "6.00", r.Achieved)
}

func TestEmailAttachment_DownloadURL(t *testing.T) {
	a := &domain.EmailAttachment{Model: domain.Model{ID: 12}, FileName: "q.pdf", StoragePath: "/var/crm/uploads/q.pdf"}

	raw, err := json.Marshal(NewEmailAttachment(a))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"download_url":"/api/v1/email/attachments/12"`)
	assert.NotContains(t, string(raw), "/var/crm")
}

func TestEmailMessage_NilListsRenderEmpty(t *testing.T) {
	out := jsonKeys(t, NewEmailMessage(&domain.EmailMessage{Folder: domain.FolderInbox}))
	assert.Equal(t, []any{}, out["cc"])
	assert.Equal(t, []any{}, out["to"])
}

func TestOptions_OnlyPublicKeys(t *testing.T) {
	out := NewOptions(map[string]string{
		domain.OptCompanyName: "Acme",
		"smtp_password":       "secret",
	})
	assert.Equal(t, map[string]string{domain.OptCompanyName: "Acme"}, out)
}

func TestDashboard_LeadTotals(t *testing.T) {
	s := &domain.DashboardSummary{
		LeadsByStatus: map[domain.LeadStatus]int{domain.LeadNew: 3, domain.LeadLost: 2},
		PipelineValue: decimal.NewFromInt(100),
	}

	r := NewDashboard(s)
	assert.Equal(t, 5, r.Leads.Total)
	assert.Equal(t, 3, r.Leads.ByStatus["new"])
	assert.Equal(t, "100.00", r.Deals.PipelineValue)
	assert.Equal(t, "0.00", r.Deals.WeightedPipeline)
}

func TestCollection_Meta(t *testing.T) {
	page := &store.Page[*domain.Todo]{
		Items:   []*domain.Todo{{Description: "a"}, {Description: "b"}},
		Total:   31,
		Page:    2,
		PerPage: 15,
	}

	c := NewCollection(page, NewTodo)
	assert.Len(t, c.Items, 2)
	assert.Equal(t, Meta{CurrentPage: 2, PerPage: 15, Total: 31, LastPage: 3}, c.Meta)
}

func TestToken_ExpiresIn(t *testing.T) {
	pair := &auth.TokenPair{
		AccessToken:      "a",
		RefreshToken:     "r",
		PairID:           uuid.New(),
		AccessExpiresAt:  now.Add(time.Hour),
		RefreshExpiresAt: now.Add(30 * 24 * time.Hour),
	}

	r := NewToken(pair, now)
	assert.Equal(t, "Bearer", r.TokenType)
	assert.Equal(t, int64(3600), r.ExpiresIn)
	assert.Equal(t, "2026-06-19T12:00:00Z", r.RefreshExpiresAt)
}
