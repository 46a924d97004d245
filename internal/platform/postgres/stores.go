package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// Constructors for the plain CRUD stores.

// NewClientStore returns the clients store.
func NewClientStore(db *sql.DB, log *slog.Logger) store.ClientStore {
	return newCRUDStore(db, clientTable, log)
}

// NewDealStore returns the deals store.
func NewDealStore(db *sql.DB, log *slog.Logger) store.DealStore {
	return newCRUDStore(db, dealTable, log)
}

// NewTaskStore returns the tasks store.
func NewTaskStore(db *sql.DB, log *slog.Logger) store.TaskStore {
	return newCRUDStore(db, taskTable, log)
}

// NewMeetingStore returns the meetings store.
func NewMeetingStore(db *sql.DB, log *slog.Logger) store.MeetingStore {
	return newCRUDStore(db, meetingTable, log)
}

// NewProposalStore returns the proposals store.
func NewProposalStore(db *sql.DB, log *slog.Logger) store.ProposalStore {
	return newCRUDStore(db, proposalTable, log)
}

// NewEstimateRequestStore returns the estimate requests store.
func NewEstimateRequestStore(db *sql.DB, log *slog.Logger) store.EstimateRequestStore {
	return newCRUDStore(db, estimateRequestTable, log)
}

// NewTodoStore returns the todos store.
func NewTodoStore(db *sql.DB, log *slog.Logger) store.TodoStore {
	return newCRUDStore(db, todoTable, log)
}

// NewNoteStore returns the notes store.
func NewNoteStore(db *sql.DB, log *slog.Logger) store.NoteStore {
	return newCRUDStore(db, noteTable, log)
}

// NewCommentStore returns the comments store.
func NewCommentStore(db *sql.DB, log *slog.Logger) store.CommentStore {
	return newCRUDStore(db, commentTable, log)
}

// NewReminderStore returns the reminders store.
func NewReminderStore(db *sql.DB, log *slog.Logger) store.ReminderStore {
	return newCRUDStore(db, reminderTable, log)
}

// NewEmailAccountStore returns the email accounts store.
func NewEmailAccountStore(db *sql.DB, log *slog.Logger) store.EmailAccountStore {
	return newCRUDStore(db, emailAccountTable, log)
}

// NewEmailSignatureStore returns the email signatures store.
func NewEmailSignatureStore(db *sql.DB, log *slog.Logger) store.EmailSignatureStore {
	return newCRUDStore(db, emailSignatureTable, log)
}
