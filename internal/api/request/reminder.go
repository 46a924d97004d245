package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateReminderRequest schedules a reminder about a record.
type CreateReminderRequest struct {
	ModelType     string `json:"model_type"      validate:"required,model_type"`
	ModelID       int64  `json:"model_id"        validate:"required,gt=0"`
	Description   string `json:"description"     validate:"max=1000"`
	RemindAt      string `json:"date"            validate:"required,timestamp"`
	StaffID       *int64 `json:"staff_id"        validate:"omitempty,gt=0"`
	NotifyByEmail bool   `json:"notify_by_email"`
}

// Prepare implements Preparer.
func (r *CreateReminderRequest) Prepare(s *Sanitizer) {
	r.Description = s.Text(r.Description)
}

// References implements Referencer.
func (r *CreateReminderRequest) References() []Reference {
	return []Reference{modelRef(r.ModelType, r.ModelID), ref("staff_id", "staff", r.StaffID)}
}

// New builds the reminder, for actor unless another staff member is named.
func (r *CreateReminderRequest) New(actor int64, _ time.Time) (*domain.Reminder, error) {
	staffID := actor
	if r.StaffID != nil && *r.StaffID != 0 {
		staffID = *r.StaffID
	}
	return &domain.Reminder{
		Related:       domain.ModelRef{Type: domain.ModelType(r.ModelType), ID: r.ModelID},
		Description:   r.Description,
		RemindAt:      timestamp(r.RemindAt),
		StaffID:       staffID,
		NotifyByEmail: r.NotifyByEmail,
		CreatedBy:     actor,
	}, nil
}

// UpdateReminderRequest changes the fields it carries. Moving the time
// re-arms a reminder that already fired.
type UpdateReminderRequest struct {
	Description   *string `json:"description"     validate:"omitnil,max=1000"`
	RemindAt      *string `json:"date"            validate:"omitnil,timestamp"`
	StaffID       *int64  `json:"staff_id"        validate:"omitnil,gt=0"`
	NotifyByEmail *bool   `json:"notify_by_email"`
}

// Prepare implements Preparer.
func (r *UpdateReminderRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Description)
}

// References implements Referencer.
func (r *UpdateReminderRequest) References() []Reference {
	return []Reference{ref("staff_id", "staff", r.StaffID)}
}

// Apply implements Updater.
func (r *UpdateReminderRequest) Apply(rem *domain.Reminder, _ time.Time) error {
	set(&rem.Description, r.Description)
	if r.RemindAt != nil {
		rem.RemindAt = timestamp(*r.RemindAt)
		rem.IsNotified = false
	}
	set(&rem.StaffID, r.StaffID)
	set(&rem.NotifyByEmail, r.NotifyByEmail)
	return nil
}

// SnoozeRequest pushes a reminder back.
type SnoozeRequest struct {
	Minutes int `json:"minutes" validate:"required,gte=1,lte=10080"`
}
