package request

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

func ptr[T any](v T) *T { return &v }

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type ruleCase struct {
	name    string
	req     any
	wantErr map[string]string
}

func runRuleCases(t *testing.T, cases []ruleCase) {
	t.Helper()
	b := NewBinder(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := b.Validate(context.Background(), tc.req)
			if len(tc.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			errs := validationErrors(t, err)
			for field, msg := range tc.wantErr {
				assert.Contains(t, errs[field], msg, "field %s", field)
			}
		})
	}
}

func TestLeadRules(t *testing.T) {
	long := string(make([]byte, 192))
	runRuleCases(t, []ruleCase{
		{name: "minimal", req: &CreateLeadRequest{Name: "Jane"}},
		{name: "missing name", req: &CreateLeadRequest{}, wantErr: map[string]string{"name": "The name field is required."}},
		{name: "long name", req: &CreateLeadRequest{Name: long}, wantErr: map[string]string{"name": "The name may not be greater than 191 characters."}},
		{name: "bad status", req: &CreateLeadRequest{Name: "Jane", Status: "converted"}, wantErr: map[string]string{"status": "The selected status is invalid."}},
		{name: "negative value", req: &CreateLeadRequest{Name: "Jane", Value: decimal.NewFromInt(-1)}, wantErr: map[string]string{"value": "The value must be at least 0."}},
		{name: "bad website", req: &CreateLeadRequest{Name: "Jane", Website: "not a url"}, wantErr: map[string]string{"website": "The website format is invalid."}},
		{name: "update with nothing", req: &UpdateLeadRequest{}},
		{name: "update blank name", req: &UpdateLeadRequest{Name: ptr("")}, wantErr: map[string]string{"name": "The name field is required."}},
		{name: "update clears email", req: &UpdateLeadRequest{Email: ptr("")}},
	})
}

func TestCreateLead_DefaultsAndOwner(t *testing.T) {
	req := &CreateLeadRequest{Name: " <b>Jane</b> ", Value: decimal.RequireFromString("10.456")}
	req.Prepare(NewSanitizer())

	lead, err := req.New(42, now)
	require.NoError(t, err)
	assert.Equal(t, "Jane", lead.Name)
	assert.Equal(t, domain.LeadNew, lead.Status)
	assert.Equal(t, "10.46", lead.Value.StringFixed(2))
	require.NotNil(t, lead.AssignedTo)
	assert.Equal(t, int64(42), *lead.AssignedTo)
}

func TestUpdateLead_Apply(t *testing.T) {
	lead := &domain.Lead{Name: "Jane", Company: "Acme", Status: domain.LeadNew, AssignedTo: ptr(int64(3))}

	req := &UpdateLeadRequest{Company: ptr("Globex"), Status: ptr("qualified"), AssignedTo: ptr(int64(0))}
	require.NoError(t, req.Apply(lead, now))

	assert.Equal(t, "Jane", lead.Name)
	assert.Equal(t, "Globex", lead.Company)
	assert.Equal(t, domain.LeadQualified, lead.Status)
	assert.Nil(t, lead.AssignedTo)
}

func TestUpdateLead_ConvertedIsFinal(t *testing.T) {
	lead := &domain.Lead{Name: "Jane", Status: domain.LeadConverted, ClientID: ptr(int64(9))}

	err := (&UpdateLeadRequest{Status: ptr("lost")}).Apply(lead, now)
	require.ErrorIs(t, err, domain.ErrInvalidState)
	verr, ok := FromStateError(err)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "status")
}

func TestConvertLead_Overrides(t *testing.T) {
	lead := &domain.Lead{Model: domain.Model{ID: 5}, Name: "Jane", Company: "Acme", City: "Oslo"}
	req := &ConvertLeadRequest{City: "Bergen", Currency: "NOK"}

	client, err := lead.ToClient(req.Overrides())
	require.NoError(t, err)
	assert.Equal(t, "Acme", client.Company)
	assert.Equal(t, "Bergen", client.City)
	assert.Equal(t, "NOK", client.Currency)
}

func TestDealRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "valid", req: &CreateDealRequest{Name: "Big one", StageID: 1, Amount: decimal.NewFromInt(500), ExpectedCloseDate: "2026-06-30"}},
		{name: "missing stage", req: &CreateDealRequest{Name: "Big one"}, wantErr: map[string]string{"stage_id": "The stage id field is required."}},
		{name: "bad date", req: &CreateDealRequest{Name: "x", StageID: 1, ExpectedCloseDate: "30/06/2026"}, wantErr: map[string]string{"expected_close_date": "The expected close date is not a valid date."}},
		{name: "bad currency", req: &CreateDealRequest{Name: "x", StageID: 1, Currency: "EURO"}, wantErr: map[string]string{"currency": "The currency must be 3 characters."}},
		{name: "move needs stage", req: &MoveDealRequest{}, wantErr: map[string]string{"stage_id": "The stage id field is required."}},
	})
}

func TestUpdateDeal_StageMoveRequiresOpenDeal(t *testing.T) {
	deal := &domain.Deal{Name: "x", StageID: 1, Status: domain.DealWon}

	err := (&UpdateDealRequest{StageID: ptr(int64(2))}).Apply(deal, now)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, int64(1), deal.StageID)

	require.NoError(t, (&UpdateDealRequest{StageID: ptr(int64(1)), Name: ptr("y")}).Apply(deal, now))
	assert.Equal(t, "y", deal.Name)
}

func TestTaskRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "valid", req: &CreateTaskRequest{Name: "Call", StartDate: "2026-01-01", DueDate: "2026-01-02", ModelType: "lead", ModelID: 3}},
		{name: "due before start", req: &CreateTaskRequest{Name: "Call", StartDate: "2026-01-02", DueDate: "2026-01-01"}, wantErr: map[string]string{"due_date": "The due date must be a date after or equal to start date."}},
		{name: "unknown model type", req: &CreateTaskRequest{Name: "Call", ModelType: "invoice", ModelID: 3}, wantErr: map[string]string{"model_type": "The selected model type is invalid."}},
		{name: "model id without type", req: &CreateTaskRequest{Name: "Call", ModelID: 3}, wantErr: map[string]string{"model_type": "The model type field is required."}},
		{name: "bad priority", req: &CreateTaskRequest{Name: "Call", Priority: "whenever"}, wantErr: map[string]string{"priority": "The selected priority is invalid."}},
		{name: "update type without id", req: &UpdateTaskRequest{ModelType: ptr("lead")}, wantErr: map[string]string{"model_type": "The model type and model id fields must be sent together."}},
	})
}

func TestCreateTask_CompletedSetsTimestamp(t *testing.T) {
	req := &CreateTaskRequest{Name: "Done already", Status: "completed"}
	req.Prepare(NewSanitizer())

	task, err := req.New(1, now)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, now, *task.CompletedAt)
	assert.Nil(t, task.Related)
}

func TestMeetingRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "same instant across offsets", req: &CreateMeetingRequest{Title: "Demo", StartAt: "2026-03-01T10:00:00Z", EndAt: "2026-03-01T11:00:00+01:00"}, wantErr: map[string]string{"end_at": endAfterStart}},
		{name: "related record", req: &CreateMeetingRequest{Title: "Demo", StartAt: "2026-03-01T10:00:00Z", EndAt: "2026-03-01T11:00:00Z", ModelType: "deal", ModelID: 4}},
		{name: "model type without id", req: &CreateMeetingRequest{Title: "Demo", StartAt: "2026-03-01T10:00:00Z", EndAt: "2026-03-01T11:00:00Z", ModelType: "deal"}, wantErr: map[string]string{"model_id": "The model id field is required."}},
		{name: "valid sql layout", req: &CreateMeetingRequest{Title: "Demo", StartAt: "2026-03-01 10:00:00", EndAt: "2026-03-01 11:00:00"}},
		{name: "bad timestamp", req: &CreateMeetingRequest{Title: "Demo", StartAt: "tomorrow", EndAt: "2026-03-01 11:00:00"}, wantErr: map[string]string{"start_at": "The start at is not a valid date time."}},
		{name: "cancelled not allowed via update", req: &UpdateMeetingRequest{Status: ptr("cancelled")}, wantErr: map[string]string{"status": "The selected status is invalid."}},
	})
}

func TestUpdateMeeting_RejectsInvertedRange(t *testing.T) {
	m := &domain.Meeting{StartAt: now, EndAt: now.Add(time.Hour), Status: domain.MeetingScheduled}

	err := (&UpdateMeetingRequest{EndAt: ptr("2026-03-14 08:00:00")}).Apply(m, now)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestProposalRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "lead target", req: &CreateProposalRequest{Subject: "Offer", ModelType: "lead", ModelID: 1}},
		{name: "deal target rejected", req: &CreateProposalRequest{Subject: "Offer", ModelType: "deal", ModelID: 1}, wantErr: map[string]string{"model_type": "The selected model type is invalid."}},
		{name: "accepted not settable", req: &UpdateProposalRequest{Status: ptr("accepted")}, wantErr: map[string]string{"status": "The selected status is invalid."}},
	})
}

func TestEstimateRules(t *testing.T) {
	item := LineItemRequest{Description: "Work", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(50)}
	runRuleCases(t, []ruleCase{
		{name: "valid", req: &CreateEstimateRequest{ClientID: 1, Date: "2026-01-01", Items: []LineItemRequest{item}}},
		{name: "no items", req: &CreateEstimateRequest{ClientID: 1, Date: "2026-01-01"}, wantErr: map[string]string{"items": "The items field is required."}},
		{name: "bad item", req: &CreateEstimateRequest{ClientID: 1, Date: "2026-01-01", Items: []LineItemRequest{{Quantity: decimal.Zero}}}, wantErr: map[string]string{
			"items.0.description": "The items.0.description field is required.",
			"items.0.qty":         "The items.0.qty must be greater than 0.",
		}},
		{name: "tax over 100", req: &CreateEstimateRequest{ClientID: 1, Date: "2026-01-01", Items: []LineItemRequest{{Description: "x", Quantity: decimal.NewFromInt(1), TaxRate: decimal.NewFromInt(101)}}}, wantErr: map[string]string{"items.0.tax_rate": "The items.0.tax_rate may not be greater than 100."}},
		{name: "expiry before date", req: &CreateEstimateRequest{ClientID: 1, Date: "2026-01-05", ExpiryDate: "2026-01-01", Items: []LineItemRequest{item}}, wantErr: map[string]string{"expiry_date": "The expiry date must be a date after or equal to date."}},
	})
}

func TestCreateEstimate_ComputesTotals(t *testing.T) {
	req := &CreateEstimateRequest{
		ClientID: 1,
		Date:     "2026-01-01",
		Discount: decimal.NewFromInt(10),
		Items: []LineItemRequest{
			{Description: "Design", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(10)},
			{Description: "Hosting", Quantity: decimal.NewFromInt(1), Rate: decimal.RequireFromString("50.5")},
		},
	}
	req.Prepare(NewSanitizer())

	est, err := req.New(1, now)
	require.NoError(t, err)
	assert.Equal(t, domain.EstimateDraft, est.Status)
	assert.Equal(t, "250.50", est.Subtotal.StringFixed(2))
	assert.Equal(t, "20.00", est.Tax.StringFixed(2))
	assert.Equal(t, "260.50", est.Total.StringFixed(2))
	assert.Equal(t, 2, est.Items[1].Position)
}

func TestUpdateEstimate_InvoicedIsFrozen(t *testing.T) {
	est := &domain.Estimate{Status: domain.EstimateInvoiced}

	err := (&UpdateEstimateRequest{Notes: ptr("x")}).Apply(est, now)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestTicketAndReplyRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "valid", req: &CreateTicketRequest{Subject: "Help", Message: "<p>Broken</p>"}},
		{name: "missing message", req: &CreateTicketRequest{Subject: "Help"}, wantErr: map[string]string{"message": "The message field is required."}},
		{name: "reply bad status", req: &TicketReplyRequest{Message: "ok", Status: "solved"}, wantErr: map[string]string{"status": "The selected status is invalid."}},
	})
}

func TestTimesheetRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "valid", req: &CreateTimesheetRequest{TaskID: 1, StartTime: "2026-01-01 09:00:00", EndTime: "2026-01-01 10:00:00"}},
		{name: "end before start", req: &CreateTimesheetRequest{TaskID: 1, StartTime: "2026-01-01 09:00:00", EndTime: "2026-01-01 08:00:00"}, wantErr: map[string]string{"end_time": "The end time must be a date after start time."}},
		{name: "start needs task", req: &StartTimerRequest{}, wantErr: map[string]string{"task_id": "The task id field is required."}},
	})
}

func TestTodoUpdate_TogglesFinishedAt(t *testing.T) {
	todo := &domain.Todo{Description: "x"}

	require.NoError(t, (&UpdateTodoRequest{Finished: ptr(true)}).Apply(todo, now))
	assert.True(t, todo.Finished)
	require.NotNil(t, todo.FinishedAt)

	require.NoError(t, (&UpdateTodoRequest{Finished: ptr(false)}).Apply(todo, now))
	assert.Nil(t, todo.FinishedAt)
}

func TestGoalRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "valid", req: &CreateGoalRequest{Subject: "Q1", Type: "won_deals", Target: decimal.NewFromInt(10), StartDate: "2026-01-01", EndDate: "2026-03-31"}},
		{name: "zero target", req: &CreateGoalRequest{Subject: "Q1", Type: "won_deals", StartDate: "2026-01-01", EndDate: "2026-03-31"}, wantErr: map[string]string{"achievement": "The achievement must be greater than 0."}},
		{name: "unknown type", req: &CreateGoalRequest{Subject: "Q1", Type: "vibes", Target: decimal.NewFromInt(1), StartDate: "2026-01-01", EndDate: "2026-03-31"}, wantErr: map[string]string{"goal_type": "The selected goal type is invalid."}},
		{name: "end before start", req: &CreateGoalRequest{Subject: "Q1", Type: "won_deals", Target: decimal.NewFromInt(1), StartDate: "2026-03-01", EndDate: "2026-01-31"}, wantErr: map[string]string{"end_date": goalEndMessage}},
	})
}

func TestReminderRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "valid", req: &CreateReminderRequest{ModelType: "client", ModelID: 2, RemindAt: "2026-04-01T08:00:00Z"}},
		{name: "missing date", req: &CreateReminderRequest{ModelType: "client", ModelID: 2}, wantErr: map[string]string{"date": "The date field is required."}},
		{name: "snooze zero", req: &SnoozeRequest{}, wantErr: map[string]string{"minutes": "The minutes field is required."}},
		{name: "snooze too long", req: &SnoozeRequest{Minutes: 20000}, wantErr: map[string]string{"minutes": "The minutes may not be greater than 10080."}},
	})
}

func TestUpdateReminder_ReArms(t *testing.T) {
	rem := &domain.Reminder{RemindAt: now, IsNotified: true}

	require.NoError(t, (&UpdateReminderRequest{RemindAt: ptr("2026-04-01 08:00:00")}).Apply(rem, now))
	assert.False(t, rem.IsNotified)
	assert.Equal(t, time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC), rem.RemindAt)
}

func TestChatRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "group", req: &CreateChatRoomRequest{Name: "Sales", Type: "group", MemberIDs: []int64{2, 3}}},
		{name: "no members", req: &CreateChatRoomRequest{Type: "group"}, wantErr: map[string]string{"member_ids": "The member ids field is required."}},
		{name: "bad member id", req: &CreateChatRoomRequest{Type: "group", MemberIDs: []int64{0}}, wantErr: map[string]string{"member_ids.0": "The member_ids.0 must be greater than 0."}},
		{name: "markup only message", req: &PostChatMessageRequest{Body: "<b></b>"}, wantErr: map[string]string{"message": "The message field is required."}},
	})
}

func TestCreateChatRoom_DirectNeedsOneOtherMember(t *testing.T) {
	_, err := (&CreateChatRoomRequest{Type: "direct", MemberIDs: []int64{1, 2, 3}}).New(1, now)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	room, err := (&CreateChatRoomRequest{Type: "direct", MemberIDs: []int64{5, 1}}).New(1, now)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 5}, room.MemberIDs)
}

func TestEmailRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "account", req: &CreateEmailAccountRequest{Email: "me@acme.test", IMAPHost: "imap.acme.test", IMAPPort: 993, SMTPHost: "smtp.acme.test", SMTPPort: 587, Username: "me", Password: "secret"}},
		{name: "account bad port", req: &CreateEmailAccountRequest{Email: "me@acme.test", IMAPHost: "imap.acme.test", IMAPPort: 70000, SMTPHost: "smtp.acme.test", SMTPPort: 587, Username: "me", Password: "secret"}, wantErr: map[string]string{"imap_port": "The imap port may not be greater than 65535."}},
		{name: "compose", req: &ComposeEmailRequest{AccountID: 1, To: []string{"a@b.test"}}},
		{name: "compose bad recipient", req: &ComposeEmailRequest{AccountID: 1, To: []string{"nope"}}, wantErr: map[string]string{"to.0": "The to.0 must be a valid email address."}},
		{name: "outbox folder not selectable", req: &UpdateEmailMessageRequest{Folder: ptr("outbox")}, wantErr: map[string]string{"folder": "The selected folder is invalid."}},
	})
}

func TestComposeEmail_QueuesUnlessDraft(t *testing.T) {
	s := NewSanitizer()

	sent := (&ComposeEmailRequest{AccountID: 1, To: []string{"a@b.test"}, BodyHTML: "<p>Hi &amp; bye</p>"}).New(4, now, s)
	assert.Equal(t, domain.FolderOutbox, sent.Folder)
	assert.Equal(t, "Hi & bye", sent.BodyText)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, []string{}, sent.Cc)

	draft := (&ComposeEmailRequest{AccountID: 1, To: []string{"a@b.test"}, Draft: true}).New(4, now, s)
	assert.Equal(t, domain.FolderDrafts, draft.Folder)
	assert.Nil(t, draft.SentAt)
}

func TestUpdateEmailAccount_EmptyPasswordKeepsStored(t *testing.T) {
	acc := &domain.EmailAccount{Password: "old"}

	require.NoError(t, (&UpdateEmailAccountRequest{Password: ptr("")}).Apply(acc, now))
	assert.Equal(t, "old", acc.Password)

	require.NoError(t, (&UpdateEmailAccountRequest{Password: ptr("new")}).Apply(acc, now))
	assert.Equal(t, "new", acc.Password)
}

func TestLoginRules(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "valid", req: &LoginRequest{Email: "a@b.test", Password: "x", DeviceName: "iPhone"}},
		{name: "missing device", req: &LoginRequest{Email: "a@b.test", Password: "x"}, wantErr: map[string]string{"device_name": "The device name field is required."}},
		{name: "refresh missing", req: &RefreshRequest{}, wantErr: map[string]string{"refresh_token": "The refresh token field is required."}},
	})
}

func TestUpdateRules_BlankRequiredFields(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "lead name", req: &UpdateLeadRequest{Name: ptr("")}, wantErr: map[string]string{"name": "The name field is required."}},
		{name: "client company spaces", req: &UpdateClientRequest{Company: ptr("   ")}, wantErr: map[string]string{"company": "The company field is required."}},
		{name: "deal name", req: &UpdateDealRequest{Name: ptr("")}, wantErr: map[string]string{"name": "The name field is required."}},
		{name: "task name", req: &UpdateTaskRequest{Name: ptr("")}, wantErr: map[string]string{"name": "The name field is required."}},
		{name: "ticket subject", req: &UpdateTicketRequest{Subject: ptr("")}, wantErr: map[string]string{"subject": "The subject field is required."}},
		{name: "ticket message spaces", req: &UpdateTicketRequest{Message: ptr(" \t")}, wantErr: map[string]string{"message": "The message field is required."}},
		{name: "goal subject", req: &UpdateGoalRequest{Subject: ptr("")}, wantErr: map[string]string{"subject": "The subject field is required."}},
		{name: "meeting title", req: &UpdateMeetingRequest{Title: ptr("")}, wantErr: map[string]string{"title": "The title field is required."}},
		{name: "note description", req: &UpdateNoteRequest{Description: ptr("")}, wantErr: map[string]string{"description": "The description field is required."}},
		{name: "comment content", req: &UpdateCommentRequest{Content: ptr(" ")}, wantErr: map[string]string{"content": "The content field is required."}},
		{name: "todo description", req: &UpdateTodoRequest{Description: ptr("")}, wantErr: map[string]string{"description": "The description field is required."}},
		{name: "email account", req: &UpdateEmailAccountRequest{Email: ptr(""), IMAPHost: ptr(""), SMTPHost: ptr(""), Username: ptr(" ")}, wantErr: map[string]string{
			"email":     "The email field is required.",
			"imap_host": "The imap host field is required.",
			"smtp_host": "The smtp host field is required.",
			"username":  "The username field is required.",
		}},
		{name: "email signature name", req: &UpdateEmailSignatureRequest{Name: ptr("")}, wantErr: map[string]string{"name": "The name field is required."}},
		{name: "estimate request email", req: &UpdateEstimateRequestRequest{Email: ptr("")}, wantErr: map[string]string{"email": "The email field is required."}},
		{name: "proposal subject", req: &UpdateProposalRequest{Subject: ptr("")}, wantErr: map[string]string{"subject": "The subject field is required."}},
		{name: "markup only task name", req: &UpdateTaskRequest{Name: ptr("<b> </b>")}, wantErr: map[string]string{"name": "The name field is required."}},
	})
}

func TestUpdateRules_EmptyStringClearsOptionalFields(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "lead email and website", req: &UpdateLeadRequest{Email: ptr(""), Website: ptr("")}},
		{name: "client website and currency", req: &UpdateClientRequest{Website: ptr(""), Currency: ptr("")}},
		{name: "deal currency and close date", req: &UpdateDealRequest{Currency: ptr(""), ExpectedCloseDate: ptr("")}},
		{name: "task dates", req: &UpdateTaskRequest{StartDate: ptr(""), DueDate: ptr("")}},
		{name: "task related record", req: &UpdateTaskRequest{ModelType: ptr(""), ModelID: ptr(int64(0))}},
		{name: "ticket email", req: &UpdateTicketRequest{Email: ptr("")}},
		{name: "estimate expiry and currency", req: &UpdateEstimateRequest{ExpiryDate: ptr(""), Currency: ptr("")}},
		{name: "proposal currency and open till", req: &UpdateProposalRequest{Currency: ptr(""), OpenTill: ptr("")}},
	})
}

func TestUpdateRules_NonEmptyOptionalFieldsStillChecked(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "lead email", req: &UpdateLeadRequest{Email: ptr("nope")}, wantErr: map[string]string{"email": "The email must be a valid email address."}},
		{name: "lead website", req: &UpdateLeadRequest{Website: ptr("not a url")}, wantErr: map[string]string{"website": "The website format is invalid."}},
		{name: "client currency", req: &UpdateClientRequest{Currency: ptr("EURO")}, wantErr: map[string]string{"currency": "The currency must be a 3 letter currency code."}},
		{name: "deal close date", req: &UpdateDealRequest{ExpectedCloseDate: ptr("30/06/2026")}, wantErr: map[string]string{"expected_close_date": "The expected close date is not a valid date."}},
		{name: "task model type", req: &UpdateTaskRequest{ModelType: ptr("invoice"), ModelID: ptr(int64(1))}, wantErr: map[string]string{"model_type": "The selected model type is invalid."}},
		{name: "ticket email", req: &UpdateTicketRequest{Email: ptr("x@")}, wantErr: map[string]string{"email": "The email must be a valid email address."}},
		{name: "proposal open till", req: &UpdateProposalRequest{OpenTill: ptr("soon")}, wantErr: map[string]string{"open_till": "The open till is not a valid date."}},
	})
}

func TestUpdateApply_EmptyStringClears(t *testing.T) {
	due := now.AddDate(0, 0, 7)

	task := &domain.Task{Name: "Call", StartDate: &now, DueDate: &due, Related: domain.NewModelRef("lead", 3)}
	req := &UpdateTaskRequest{StartDate: ptr(""), DueDate: ptr(""), ModelType: ptr(""), ModelID: ptr(int64(0))}
	require.NoError(t, req.Apply(task, now))
	assert.Nil(t, task.StartDate)
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.Related)

	deal := &domain.Deal{Name: "x", StageID: 1, Currency: "EUR", ExpectedCloseDate: &due}
	require.NoError(t, (&UpdateDealRequest{Currency: ptr(""), ExpectedCloseDate: ptr("")}).Apply(deal, now))
	assert.Empty(t, deal.Currency)
	assert.Nil(t, deal.ExpectedCloseDate)

	lead := &domain.Lead{Name: "Jane", Email: "jane@acme.test", Status: domain.LeadNew}
	require.NoError(t, (&UpdateLeadRequest{Email: ptr("")}).Apply(lead, now))
	assert.Empty(t, lead.Email)
	assert.Equal(t, "Jane", lead.Name)
}
