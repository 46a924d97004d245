package resource

import (
	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// TicketResource is a support ticket.
type TicketResource struct {
	ID          int64   `json:"id"`
	Subject     string  `json:"subject"`
	Message     string  `json:"message"`
	ClientID    *int64  `json:"client_id"`
	Email       string  `json:"email"`
	Department  string  `json:"department"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	AssignedTo  *int64  `json:"assigned_to"`
	CreatedBy   int64   `json:"created_by"`
	LastReplyAt *string `json:"last_reply_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// NewTicket transforms a ticket.
func NewTicket(t *domain.Ticket) TicketResource {
	return TicketResource{
		ID:          t.ID,
		Subject:     t.Subject,
		Message:     t.Message,
		ClientID:    t.ClientID,
		Email:       t.Email,
		Department:  t.Department,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		LastReplyAt: timestampPtr(t.LastReplyAt),
		CreatedAt:   timestamp(t.CreatedAt),
		UpdatedAt:   timestamp(t.UpdatedAt),
	}
}

// TicketReplyResource is one reply in a ticket thread.
type TicketReplyResource struct {
	ID        int64  `json:"id"`
	TicketID  int64  `json:"ticket_id"`
	StaffID   int64  `json:"staff_id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// NewTicketReply transforms a reply.
func NewTicketReply(r *domain.TicketReply) TicketReplyResource {
	return TicketReplyResource{
		ID:        r.ID,
		TicketID:  r.TicketID,
		StaffID:   r.StaffID,
		Message:   r.Message,
		CreatedAt: timestamp(r.CreatedAt),
	}
}

// GoalResource is a goal with its measured progress.
type GoalResource struct {
	ID                 int64  `json:"id"`
	Subject            string `json:"subject"`
	Description        string `json:"description"`
	Type               string `json:"goal_type"`
	Target             string `json:"achievement"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	StaffID            *int64 `json:"staff_id"`
	NotifyWhenAchieved bool   `json:"notify_when_achieved"`
	Achieved           string `json:"achieved"`
	Progress           int    `json:"progress"`
	IsAchieved         bool   `json:"is_achieved"`
	CreatedAt          string `json:"created_at"`
}

// NewGoal transforms a goal given the achieved value of its metric.
func NewGoal(g *domain.Goal, achieved decimal.Decimal) GoalResource {
	return GoalResource{
		ID:                 g.ID,
		Subject:            g.Subject,
		Description:        g.Description,
		Type:               string(g.Type),
		Target:             money(g.Target),
		StartDate:          date(g.StartDate),
		EndDate:            date(g.EndDate),
		StaffID:            g.StaffID,
		NotifyWhenAchieved: g.NotifyWhenAchieved,
		Achieved:           money(achieved),
		Progress:           g.Progress(achieved),
		IsAchieved:         g.Achieved(achieved),
		CreatedAt:          timestamp(g.CreatedAt),
	}
}
