package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

const endAfterStart = "The end at must be a date after start at."

// CreateMeetingRequest schedules a meeting.
type CreateMeetingRequest struct {
	Title       string `json:"title"       validate:"required,max=191"`
	Description string `json:"description" validate:"max=10000"`
	Location    string `json:"location"    validate:"max=255"`
	StartAt     string `json:"start_at"    validate:"required,timestamp"`
	EndAt       string `json:"end_at"      validate:"required,timestamp"`
	ModelType   string `json:"model_type"  validate:"omitempty,model_type"`
	ModelID     int64  `json:"model_id"    validate:"omitempty,gt=0"`
}

// Prepare implements Preparer.
func (r *CreateMeetingRequest) Prepare(s *Sanitizer) {
	r.Title = s.Text(r.Title)
	r.Location = s.Text(r.Location)
	r.Description = s.HTML(r.Description)
}

// Check implements Checker.
func (r *CreateMeetingRequest) Check() map[string]string {
	if errs := checkModelPair(r.ModelType, r.ModelID); errs != nil {
		return errs
	}
	if !timestamp(r.EndAt).After(timestamp(r.StartAt)) {
		return map[string]string{"end_at": endAfterStart}
	}
	return nil
}

// References implements Referencer.
func (r *CreateMeetingRequest) References() []Reference {
	return []Reference{modelRef(r.ModelType, r.ModelID)}
}

// New builds a scheduled meeting organised by actor.
func (r *CreateMeetingRequest) New(actor int64, _ time.Time) (*domain.Meeting, error) {
	return &domain.Meeting{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartAt:     timestamp(r.StartAt),
		EndAt:       timestamp(r.EndAt),
		Status:      domain.MeetingScheduled,
		Related:     domain.NewModelRef(r.ModelType, r.ModelID),
		OrganizerID: actor,
	}, nil
}

// UpdateMeetingRequest changes the fields it carries. The status moves
// between scheduled and completed here; cancelling has its own action.
type UpdateMeetingRequest struct {
	Title       *string `json:"title"       validate:"omitnil,notblank,max=191"`
	Description *string `json:"description" validate:"omitnil,max=10000"`
	Location    *string `json:"location"    validate:"omitnil,max=255"`
	StartAt     *string `json:"start_at"    validate:"omitnil,timestamp"`
	EndAt       *string `json:"end_at"      validate:"omitnil,timestamp"`
	Status      *string `json:"status"      validate:"omitnil,oneof=scheduled completed"`
}

// Prepare implements Preparer.
func (r *UpdateMeetingRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Title)
	s.TextPtr(r.Location)
	s.HTMLPtr(r.Description)
}

// Apply implements Updater.
func (r *UpdateMeetingRequest) Apply(m *domain.Meeting, _ time.Time) error {
	if r.Status != nil && m.Status == domain.MeetingCancelled {
		return domain.NewStateError("status", "A cancelled meeting cannot be changed.")
	}
	set(&m.Title, r.Title)
	set(&m.Description, r.Description)
	set(&m.Location, r.Location)
	if r.StartAt != nil {
		m.StartAt = timestamp(*r.StartAt)
	}
	if r.EndAt != nil {
		m.EndAt = timestamp(*r.EndAt)
	}
	if !m.EndAt.After(m.StartAt) {
		return domain.NewStateError("end_at", endAfterStart)
	}
	setAs(&m.Status, r.Status)
	return nil
}

// CancelMeetingRequest cancels a scheduled meeting.
type CancelMeetingRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// Prepare implements Preparer.
func (r *CancelMeetingRequest) Prepare(s *Sanitizer) {
	r.Reason = s.Text(r.Reason)
}
