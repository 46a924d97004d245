package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateTicketRequest opens a support ticket.
type CreateTicketRequest struct {
	Subject    string `json:"subject"     validate:"required,max=191"`
	Message    string `json:"message"     validate:"required,max=65535"`
	ClientID   *int64 `json:"client_id"   validate:"omitempty,gt=0"`
	Email      string `json:"email"       validate:"omitempty,email,max=191"`
	Department string `json:"department"  validate:"max=100"`
	Priority   string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo *int64 `json:"assigned_to" validate:"omitempty,gt=0"`
}

// Prepare implements Preparer.
func (r *CreateTicketRequest) Prepare(s *Sanitizer) {
	r.Subject = s.Text(r.Subject)
	r.Message = s.HTML(r.Message)
	r.Department = s.Text(r.Department)
	if r.Priority == "" {
		r.Priority = string(domain.PriorityMedium)
	}
}

// Check implements Checker.
func (r *CreateTicketRequest) Check() map[string]string {
	if r.Message == "" {
		return map[string]string{"message": "The message field is required."}
	}
	return nil
}

// References implements Referencer.
func (r *CreateTicketRequest) References() []Reference {
	return []Reference{ref("client_id", "clients", r.ClientID), ref("assigned_to", "staff", r.AssignedTo)}
}

// New builds an open ticket.
func (r *CreateTicketRequest) New(actor int64, _ time.Time) (*domain.Ticket, error) {
	return &domain.Ticket{
		Subject:    r.Subject,
		Message:    r.Message,
		ClientID:   optionalID(r.ClientID),
		Email:      r.Email,
		Department: r.Department,
		Priority:   domain.Priority(r.Priority),
		Status:     domain.TicketOpen,
		AssignedTo: optionalID(r.AssignedTo),
		CreatedBy:  actor,
	}, nil
}

// UpdateTicketRequest changes the fields it carries.
type UpdateTicketRequest struct {
	Subject    *string `json:"subject"     validate:"omitnil,notblank,max=191"`
	Message    *string `json:"message"     validate:"omitnil,notblank,max=65535"`
	ClientID   *int64  `json:"client_id"   validate:"omitnil,gte=0"`
	Email      *string `json:"email"       validate:"omitnil,optional_email,max=191"`
	Department *string `json:"department"  validate:"omitnil,max=100"`
	Priority   *string `json:"priority"    validate:"omitnil,oneof=low medium high urgent"`
	Status     *string `json:"status"      validate:"omitnil,oneof=open in_progress answered on_hold closed"`
	AssignedTo *int64  `json:"assigned_to" validate:"omitnil,gte=0"`
}

// Prepare implements Preparer.
func (r *UpdateTicketRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Subject)
	s.HTMLPtr(r.Message)
	s.TextPtr(r.Department)
}

// References implements Referencer.
func (r *UpdateTicketRequest) References() []Reference {
	return []Reference{ref("client_id", "clients", r.ClientID), ref("assigned_to", "staff", r.AssignedTo)}
}

// Apply implements Updater.
func (r *UpdateTicketRequest) Apply(t *domain.Ticket, _ time.Time) error {
	set(&t.Subject, r.Subject)
	set(&t.Message, r.Message)
	setID(&t.ClientID, r.ClientID)
	set(&t.Email, r.Email)
	set(&t.Department, r.Department)
	setAs(&t.Priority, r.Priority)
	setAs(&t.Status, r.Status)
	setID(&t.AssignedTo, r.AssignedTo)
	return nil
}

// TicketStatusRequest changes only a ticket's status.
type TicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress answered on_hold closed"`
}

// TicketReplyRequest posts a staff reply. Status overrides the default
// move to answered.
type TicketReplyRequest struct {
	Message string `json:"message" validate:"required,max=65535"`
	Status  string `json:"status"  validate:"omitempty,oneof=open in_progress answered on_hold closed"`
}

// Prepare implements Preparer.
func (r *TicketReplyRequest) Prepare(s *Sanitizer) {
	r.Message = s.HTML(r.Message)
}

// Check implements Checker.
func (r *TicketReplyRequest) Check() map[string]string {
	if r.Message == "" {
		return map[string]string{"message": "The message field is required."}
	}
	return nil
}
