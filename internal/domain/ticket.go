package domain

import "time"

// TicketStatus is the support state of a ticket.
type TicketStatus string

// Ticket statuses.
const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketAnswered   TicketStatus = "answered"
	TicketOnHold     TicketStatus = "on_hold"
	TicketClosed     TicketStatus = "closed"
)

// Ticket is a support request.
type Ticket struct {
	Model
	Subject     string
	Message     string
	ClientID    *int64
	Email       string
	Department  string
	Priority    Priority
	Status      TicketStatus
	AssignedTo  *int64
	CreatedBy   int64
	LastReplyAt *time.Time
}

// TicketReply is a staff answer on a ticket thread.
type TicketReply struct {
	Model
	TicketID int64
	StaffID  int64
	Message  string
}

// ApplyReply updates the ticket after a staff reply. The ticket moves to
// status when given, otherwise to answered.
func (t *Ticket) ApplyReply(status TicketStatus, now time.Time) {
	if status == "" {
		status = TicketAnswered
	}
	t.Status = status
	t.LastReplyAt = &now
}
