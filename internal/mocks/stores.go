package mocks

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// StaffStore is an in-memory store.StaffStore.
type StaffStore struct {
	*MemoryStore[*domain.Staff]
}

var _ store.StaffStore = (*StaffStore)(nil)

// NewStaffStore creates an empty StaffStore.
func NewStaffStore() *StaffStore {
	s := &StaffStore{MemoryStore: NewMemoryStore[*domain.Staff]()}
	s.Match = func(st *domain.Staff, key, value string) bool {
		switch key {
		case "active":
			return fmt.Sprint(st.Active) == value
		case "is_admin":
			return fmt.Sprint(st.IsAdmin) == value
		}
		return true
	}
	return s
}

// GetByEmail implements store.StaffStore.
func (s *StaffStore) GetByEmail(_ context.Context, email string) (*domain.Staff, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, st := range s.All() {
		if strings.EqualFold(st.Email, email) {
			return st, nil
		}
	}
	return nil, store.ErrStaffNotFound
}

// TouchLastLogin implements store.StaffStore.
func (s *StaffStore) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	st, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	at = at.UTC()
	st.LastLoginAt = &at
	return nil
}

// LeadStore is an in-memory store.LeadStore.
type LeadStore struct {
	*MemoryStore[*domain.Lead]
	Clients *MemoryStore[*domain.Client]
}

var _ store.LeadStore = (*LeadStore)(nil)

// NewLeadStore creates a LeadStore that writes converted clients to clients.
func NewLeadStore(clients *MemoryStore[*domain.Client]) *LeadStore {
	s := &LeadStore{MemoryStore: NewMemoryStore[*domain.Lead](), Clients: clients}
	s.Match = func(l *domain.Lead, key, value string) bool {
		switch key {
		case "status":
			return string(l.Status) == value
		case "source":
			return l.Source == value
		case "assigned_to":
			return l.AssignedTo != nil && MatchInt64(*l.AssignedTo, value)
		}
		return true
	}
	return s
}

// Convert implements store.LeadStore.
func (s *LeadStore) Convert(ctx context.Context, lead *domain.Lead, client *domain.Client, now time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	stored, err := s.Get(ctx, lead.ID)
	if err != nil {
		return err
	}
	if stored.ClientID != nil {
		return fmt.Errorf("%w: lead %d already converted", store.ErrConflict, lead.ID)
	}
	if err := s.Clients.Create(ctx, client); err != nil {
		return err
	}
	lead.MarkConverted(client.ID, now.UTC())
	return s.Update(ctx, lead)
}

// PipelineStageStore is an in-memory store.PipelineStageStore.
type PipelineStageStore struct {
	*MemoryStore[*domain.PipelineStage]
}

var _ store.PipelineStageStore = (*PipelineStageStore)(nil)

// NewPipelineStageStore creates an empty PipelineStageStore.
func NewPipelineStageStore() *PipelineStageStore {
	return &PipelineStageStore{MemoryStore: NewMemoryStore[*domain.PipelineStage]()}
}

// All implements store.PipelineStageStore.
func (s *PipelineStageStore) All(_ context.Context) ([]*domain.PipelineStage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stages := s.MemoryStore.All()
	slices.SortStableFunc(stages, func(a, b *domain.PipelineStage) int {
		if a.PipelineID != b.PipelineID {
			return int(a.PipelineID - b.PipelineID)
		}
		return a.Position - b.Position
	})
	return stages, nil
}

// EstimateStore is an in-memory store.EstimateStore.
type EstimateStore struct {
	*MemoryStore[*domain.Estimate]
	Invoices *MemoryStore[*domain.Invoice]
}

var _ store.EstimateStore = (*EstimateStore)(nil)

// NewEstimateStore creates an empty EstimateStore.
func NewEstimateStore() *EstimateStore {
	s := &EstimateStore{
		MemoryStore: NewMemoryStore[*domain.Estimate](),
		Invoices:    NewMemoryStore[*domain.Invoice](),
	}
	s.Match = func(e *domain.Estimate, key, value string) bool {
		switch key {
		case "status":
			return string(e.Status) == value
		case "client_id":
			return MatchInt64(e.ClientID, value)
		}
		return true
	}
	return s
}

// Create implements store.EntityStore and recalculates totals.
func (s *EstimateStore) Create(ctx context.Context, e *domain.Estimate) error {
	e.Recalculate()
	return s.MemoryStore.Create(ctx, e)
}

// Update implements store.EntityStore and recalculates totals.
func (s *EstimateStore) Update(ctx context.Context, e *domain.Estimate) error {
	if e.Items != nil {
		e.Recalculate()
	}
	return s.MemoryStore.Update(ctx, e)
}

// ConvertToInvoice implements store.EstimateStore.
func (s *EstimateStore) ConvertToInvoice(ctx context.Context, est *domain.Estimate, inv *domain.Invoice) error {
	if s.Err != nil {
		return s.Err
	}
	stored, err := s.Get(ctx, est.ID)
	if err != nil {
		return err
	}
	if stored.InvoiceID != nil {
		return fmt.Errorf("%w: estimate %d already invoiced", store.ErrConflict, est.ID)
	}
	if err := s.Invoices.Create(ctx, inv); err != nil {
		return err
	}
	est.MarkInvoiced(inv.ID)
	return s.MemoryStore.Update(ctx, est)
}

// TicketStore is an in-memory store.TicketStore.
type TicketStore struct {
	*MemoryStore[*domain.Ticket]
	mu      sync.Mutex
	replies []*domain.TicketReply
}

var _ store.TicketStore = (*TicketStore)(nil)

// NewTicketStore creates an empty TicketStore.
func NewTicketStore() *TicketStore {
	s := &TicketStore{MemoryStore: NewMemoryStore[*domain.Ticket]()}
	s.Match = func(t *domain.Ticket, key, value string) bool {
		switch key {
		case "status":
			return string(t.Status) == value
		case "priority":
			return string(t.Priority) == value
		}
		return true
	}
	return s
}

// Replies implements store.TicketStore.
func (s *TicketStore) Replies(_ context.Context, ticketID int64) ([]*domain.TicketReply, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.TicketReply{}
	for _, r := range s.replies {
		if r.TicketID == ticketID {
			out = append(out, r)
		}
	}
	return out, nil
}

// AddReply implements store.TicketStore.
func (s *TicketStore) AddReply(ctx context.Context, ticket *domain.Ticket, reply *domain.TicketReply) error {
	if err := s.Update(ctx, ticket); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	reply.ID = int64(len(s.replies) + 1)
	reply.TicketID = ticket.ID
	reply.CreatedAt = s.Now().UTC()
	reply.UpdatedAt = reply.CreatedAt
	s.replies = append(s.replies, reply)
	return nil
}

// TimesheetStore is an in-memory store.TimesheetStore.
type TimesheetStore struct {
	*MemoryStore[*domain.Timesheet]
}

var _ store.TimesheetStore = (*TimesheetStore)(nil)

// NewTimesheetStore creates an empty TimesheetStore.
func NewTimesheetStore() *TimesheetStore {
	s := &TimesheetStore{MemoryStore: NewMemoryStore[*domain.Timesheet]()}
	s.Match = func(t *domain.Timesheet, key, value string) bool {
		switch key {
		case "staff_id":
			return MatchInt64(t.StaffID, value)
		case "task_id":
			return MatchInt64(t.TaskID, value)
		}
		return true
	}
	return s
}

// FindRunning implements store.TimesheetStore.
func (s *TimesheetStore) FindRunning(_ context.Context, staffID int64) (*domain.Timesheet, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, t := range s.All() {
		if t.StaffID == staffID && t.Running() {
			return t, nil
		}
	}
	return nil, store.ErrNotFound
}

// GoalStore is an in-memory store.GoalStore with a fixed achieved value
// per goal id.
type GoalStore struct {
	*MemoryStore[*domain.Goal]
	Achievements map[int64]decimal.Decimal
}

var _ store.GoalStore = (*GoalStore)(nil)

// NewGoalStore creates an empty GoalStore.
func NewGoalStore() *GoalStore {
	return &GoalStore{
		MemoryStore:  NewMemoryStore[*domain.Goal](),
		Achievements: map[int64]decimal.Decimal{},
	}
}

// Achieved implements store.GoalStore.
func (s *GoalStore) Achieved(_ context.Context, goal *domain.Goal) (decimal.Decimal, error) {
	if s.Err != nil {
		return decimal.Zero, s.Err
	}
	return s.Achievements[goal.ID], nil
}

// EmailMessageStore is an in-memory store.EmailMessageStore.
type EmailMessageStore struct {
	*MemoryStore[*domain.EmailMessage]
	Files *MemoryStore[*domain.EmailAttachment]
}

var _ store.EmailMessageStore = (*EmailMessageStore)(nil)

// NewEmailMessageStore creates an empty EmailMessageStore.
func NewEmailMessageStore() *EmailMessageStore {
	s := &EmailMessageStore{
		MemoryStore: NewMemoryStore[*domain.EmailMessage](),
		Files:       NewMemoryStore[*domain.EmailAttachment](),
	}
	s.Match = func(m *domain.EmailMessage, key, value string) bool {
		switch key {
		case "staff_id":
			return MatchInt64(m.StaffID, value)
		case "folder":
			return string(m.Folder) == value
		case "account_id":
			return MatchInt64(m.AccountID, value)
		}
		return true
	}
	return s
}

// Attachments implements store.EmailMessageStore.
func (s *EmailMessageStore) Attachments(_ context.Context, messageID int64) ([]*domain.EmailAttachment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := []*domain.EmailAttachment{}
	for _, a := range s.Files.All() {
		if a.MessageID == messageID {
			out = append(out, a)
		}
	}
	return out, nil
}

// Attachment implements store.EmailMessageStore.
func (s *EmailMessageStore) Attachment(ctx context.Context, id int64) (*domain.EmailAttachment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Files.Get(ctx, id)
}

// OptionStore is an in-memory store.OptionStore.
type OptionStore struct {
	Values map[string]string
	Err    error
}

var _ store.OptionStore = (*OptionStore)(nil)

// Get implements store.OptionStore.
func (s *OptionStore) Get(_ context.Context, keys ...string) (map[string]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := map[string]string{}
	for _, k := range keys {
		if v, ok := s.Values[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

// DashboardStore returns a canned summary.
type DashboardStore struct {
	Result *domain.DashboardSummary
	Err    error
}

var _ store.DashboardStore = (*DashboardStore)(nil)

// Summary implements store.DashboardStore.
func (s *DashboardStore) Summary(_ context.Context, _ int64, _ time.Time) (*domain.DashboardSummary, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Result == nil {
		return &domain.DashboardSummary{LeadsByStatus: map[domain.LeadStatus]int{}}, nil
	}
	return s.Result, nil
}

// ReferenceChecker reports ids registered per table as existing.
type ReferenceChecker struct {
	mu   sync.Mutex
	rows map[string]map[int64]bool
	Err  error
}

var _ store.ReferenceChecker = (*ReferenceChecker)(nil)

// NewReferenceChecker creates a checker that knows no rows.
func NewReferenceChecker() *ReferenceChecker {
	return &ReferenceChecker{rows: map[string]map[int64]bool{}}
}

// Add registers ids as existing in table.
func (c *ReferenceChecker) Add(table string, ids ...int64) *ReferenceChecker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rows[table] == nil {
		c.rows[table] = map[int64]bool{}
	}
	for _, id := range ids {
		c.rows[table][id] = true
	}
	return c
}

// Exists implements store.ReferenceChecker.
func (c *ReferenceChecker) Exists(_ context.Context, table string, id int64) (bool, error) {
	if c.Err != nil {
		return false, c.Err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows[table][id], nil
}
