package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// EntityStore is the CRUD contract shared by every CRM resource.
type EntityStore[E domain.Entity] interface {
	// List returns one page of records matching params.
	List(ctx context.Context, params ListParams) (*Page[E], error)

	// Get returns the record with id or ErrNotFound.
	Get(ctx context.Context, id int64) (E, error)

	// Create inserts e and sets its id and timestamps.
	Create(ctx context.Context, e E) error

	// Update writes every column of e and refreshes UpdatedAt.
	// Returns ErrNotFound if the record no longer exists.
	Update(ctx context.Context, e E) error

	// Delete removes the record with id or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

// Plain CRUD stores.
type (
	ClientStore          = EntityStore[*domain.Client]
	DealStore            = EntityStore[*domain.Deal]
	TaskStore            = EntityStore[*domain.Task]
	MeetingStore         = EntityStore[*domain.Meeting]
	ProposalStore        = EntityStore[*domain.Proposal]
	EstimateRequestStore = EntityStore[*domain.EstimateRequest]
	TodoStore            = EntityStore[*domain.Todo]
	NoteStore            = EntityStore[*domain.Note]
	CommentStore         = EntityStore[*domain.Comment]
	ReminderStore        = EntityStore[*domain.Reminder]
	EmailAccountStore    = EntityStore[*domain.EmailAccount]
	EmailSignatureStore  = EntityStore[*domain.EmailSignature]
)

// StaffStore reads staff members for login and the staff directory.
type StaffStore interface {
	EntityStore[*domain.Staff]

	// GetByEmail finds a staff member by email, case-insensitively.
	// Returns ErrStaffNotFound when nobody matches.
	GetByEmail(ctx context.Context, email string) (*domain.Staff, error)

	// TouchLastLogin records a successful sign in.
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

// LeadStore persists leads and their conversion into clients.
type LeadStore interface {
	EntityStore[*domain.Lead]

	// Convert inserts client and marks lead converted in one transaction.
	// On success client.ID is set and lead reflects the stored row.
	Convert(ctx context.Context, lead *domain.Lead, client *domain.Client, now time.Time) error
}

// PipelineStageStore reads the pipeline board configuration.
type PipelineStageStore interface {
	EntityStore[*domain.PipelineStage]

	// All returns every stage ordered by pipeline and position.
	All(ctx context.Context) ([]*domain.PipelineStage, error)
}

// EstimateStore persists estimates with their line items. Create and
// Update replace the item rows in the same transaction as the estimate.
type EstimateStore interface {
	EntityStore[*domain.Estimate]

	// ConvertToInvoice inserts inv and marks est invoiced atomically.
	// It fails with ErrConflict if est was invoiced concurrently.
	ConvertToInvoice(ctx context.Context, est *domain.Estimate, inv *domain.Invoice) error
}

// TicketStore persists tickets and their reply threads.
type TicketStore interface {
	EntityStore[*domain.Ticket]

	// Replies returns the thread for a ticket, oldest first.
	Replies(ctx context.Context, ticketID int64) ([]*domain.TicketReply, error)

	// AddReply inserts reply and saves ticket's updated status in one
	// transaction.
	AddReply(ctx context.Context, ticket *domain.Ticket, reply *domain.TicketReply) error
}

// TimesheetStore persists logged time.
type TimesheetStore interface {
	EntityStore[*domain.Timesheet]

	// FindRunning returns the staff member's running timer or ErrNotFound.
	FindRunning(ctx context.Context, staffID int64) (*domain.Timesheet, error)
}

// GoalStore persists goals and measures progress against them.
type GoalStore interface {
	EntityStore[*domain.Goal]

	// Achieved computes the goal metric over the goal's date range.
	Achieved(ctx context.Context, goal *domain.Goal) (decimal.Decimal, error)
}

// ChatStore persists staff chat rooms and messages.
type ChatStore interface {
	// Rooms lists rooms staffID belongs to, most recent activity first,
	// with UnreadCount filled in for that member.
	Rooms(ctx context.Context, staffID int64, params ListParams) (*Page[*domain.ChatRoom], error)

	// Room returns a room with its members or ErrNotFound.
	Room(ctx context.Context, id int64) (*domain.ChatRoom, error)

	// CreateRoom inserts the room and its member rows.
	CreateRoom(ctx context.Context, room *domain.ChatRoom) error

	// DeleteRoom removes a room with its members and messages.
	DeleteRoom(ctx context.Context, id int64) error

	// Messages lists a room's messages, newest first.
	Messages(ctx context.Context, roomID int64, params ListParams) (*Page[*domain.ChatMessage], error)

	// PostMessage inserts msg and bumps the room's last activity.
	PostMessage(ctx context.Context, msg *domain.ChatMessage) error

	// MarkRead records that staffID has read the room up to at.
	MarkRead(ctx context.Context, roomID, staffID int64, at time.Time) error
}

// EmailMessageStore persists mailbox messages and attachment metadata.
type EmailMessageStore interface {
	EntityStore[*domain.EmailMessage]

	// Attachments lists attachment metadata for a message.
	Attachments(ctx context.Context, messageID int64) ([]*domain.EmailAttachment, error)

	// Attachment returns one attachment or ErrNotFound.
	Attachment(ctx context.Context, id int64) (*domain.EmailAttachment, error)
}

// OptionStore reads CRM settings from the options table.
type OptionStore interface {
	// Get returns the values for keys. Missing keys are absent from the map.
	Get(ctx context.Context, keys ...string) (map[string]string, error)
}

// DashboardStore aggregates the home screen counters.
type DashboardStore interface {
	Summary(ctx context.Context, staffID int64, now time.Time) (*domain.DashboardSummary, error)
}

// ReferenceChecker verifies that a foreign key points at an existing row.
type ReferenceChecker interface {
	// Exists reports whether table has a row with id. Tables outside the
	// implementation's whitelist return ErrUnknownTable.
	Exists(ctx context.Context, table string, id int64) (bool, error)
}

// TokenStore persists the mobile_api_tokens rows behind issued JWTs.
type TokenStore interface {
	// ReplaceDevice revokes staffID's live tokens for device and inserts
	// tokens, all in one transaction.
	ReplaceDevice(ctx context.Context, staffID int64, device string, now time.Time, tokens ...*domain.MobileToken) error

	// Rotate revokes every token in oldPair and inserts tokens in one
	// transaction. It fails with ErrConflict when the pair was already
	// revoked, so a refresh token can only be used once.
	Rotate(ctx context.Context, oldPair uuid.UUID, now time.Time, tokens ...*domain.MobileToken) error

	// GetByID returns the token with jti id or ErrTokenNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MobileToken, error)

	// RevokePair revokes both tokens of a pair.
	RevokePair(ctx context.Context, pairID uuid.UUID, now time.Time) error

	// RevokeAll revokes every live token of a staff member and returns
	// how many rows changed.
	RevokeAll(ctx context.Context, staffID int64, now time.Time) (int64, error)

	// TouchLastUsed records use of an access token.
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error

	// PruneExpired deletes tokens that expired or were revoked before
	// cutoff and returns how many rows were removed.
	PruneExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
