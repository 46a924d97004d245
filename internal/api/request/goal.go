package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

const goalEndMessage = "The end date must be a date after or equal to start date."

// CreateGoalRequest sets a target for a staff member or the company.
type CreateGoalRequest struct {
	Subject            string          `json:"subject"              validate:"required,max=191"`
	Description        string          `json:"description"          validate:"max=10000"`
	Type               string          `json:"goal_type"            validate:"required,oneof=total_income new_clients converted_leads won_deals closed_tickets"`
	Target             decimal.Decimal `json:"achievement"          validate:"gt=0"`
	StartDate          string          `json:"start_date"           validate:"required,date"`
	EndDate            string          `json:"end_date"             validate:"required,date"`
	StaffID            *int64          `json:"staff_id"             validate:"omitempty,gt=0"`
	NotifyWhenAchieved bool            `json:"notify_when_achieved"`
}

// Prepare implements Preparer.
func (r *CreateGoalRequest) Prepare(s *Sanitizer) {
	r.Subject = s.Text(r.Subject)
	r.Description = s.Text(r.Description)
}

// Check implements Checker.
func (r *CreateGoalRequest) Check() map[string]string {
	return checkDateOrder(r.StartDate, r.EndDate, "end_date", goalEndMessage)
}

// References implements Referencer.
func (r *CreateGoalRequest) References() []Reference {
	return []Reference{ref("staff_id", "staff", r.StaffID)}
}

// New builds the goal.
func (r *CreateGoalRequest) New(int64, time.Time) (*domain.Goal, error) {
	return &domain.Goal{
		Subject:            r.Subject,
		Description:        r.Description,
		Type:               domain.GoalType(r.Type),
		Target:             r.Target,
		StartDate:          date(r.StartDate),
		EndDate:            date(r.EndDate),
		StaffID:            optionalID(r.StaffID),
		NotifyWhenAchieved: r.NotifyWhenAchieved,
	}, nil
}

// UpdateGoalRequest changes the fields it carries.
type UpdateGoalRequest struct {
	Subject            *string          `json:"subject"              validate:"omitnil,notblank,max=191"`
	Description        *string          `json:"description"          validate:"omitnil,max=10000"`
	Type               *string          `json:"goal_type"            validate:"omitnil,oneof=total_income new_clients converted_leads won_deals closed_tickets"`
	Target             *decimal.Decimal `json:"achievement"          validate:"omitnil,gt=0"`
	StartDate          *string          `json:"start_date"           validate:"omitnil,date"`
	EndDate            *string          `json:"end_date"             validate:"omitnil,date"`
	StaffID            *int64           `json:"staff_id"             validate:"omitnil,gte=0"`
	NotifyWhenAchieved *bool            `json:"notify_when_achieved"`
}

// Prepare implements Preparer.
func (r *UpdateGoalRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Subject)
	s.TextPtr(r.Description)
}

// References implements Referencer.
func (r *UpdateGoalRequest) References() []Reference {
	return []Reference{ref("staff_id", "staff", r.StaffID)}
}

// Apply implements Updater.
func (r *UpdateGoalRequest) Apply(g *domain.Goal, _ time.Time) error {
	set(&g.Subject, r.Subject)
	set(&g.Description, r.Description)
	setAs(&g.Type, r.Type)
	set(&g.Target, r.Target)
	if r.StartDate != nil {
		g.StartDate = date(*r.StartDate)
	}
	if r.EndDate != nil {
		g.EndDate = date(*r.EndDate)
	}
	if g.EndDate.Before(g.StartDate) {
		return domain.NewStateError("end_date", goalEndMessage)
	}
	setID(&g.StaffID, r.StaffID)
	set(&g.NotifyWhenAchieved, r.NotifyWhenAchieved)
	return nil
}
