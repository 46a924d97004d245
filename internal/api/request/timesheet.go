package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateTimesheetRequest logs a finished block of time.
type CreateTimesheetRequest struct {
	TaskID    int64  `json:"task_id"    validate:"required,gt=0"`
	StartTime string `json:"start_time" validate:"required,timestamp"`
	EndTime   string `json:"end_time"   validate:"required,timestamp"`
	Note      string `json:"note"       validate:"max=1000"`
}

// Prepare implements Preparer.
func (r *CreateTimesheetRequest) Prepare(s *Sanitizer) {
	r.Note = s.Text(r.Note)
}

// Check implements Checker.
func (r *CreateTimesheetRequest) Check() map[string]string {
	if !timestamp(r.EndTime).After(timestamp(r.StartTime)) {
		return map[string]string{"end_time": "The end time must be a date after start time."}
	}
	return nil
}

// References implements Referencer.
func (r *CreateTimesheetRequest) References() []Reference {
	return []Reference{{Field: "task_id", Table: "tasks", ID: r.TaskID}}
}

// New builds the entry for actor.
func (r *CreateTimesheetRequest) New(actor int64, _ time.Time) (*domain.Timesheet, error) {
	end := timestamp(r.EndTime)
	return &domain.Timesheet{
		TaskID:    r.TaskID,
		StaffID:   actor,
		StartTime: timestamp(r.StartTime),
		EndTime:   &end,
		Note:      r.Note,
	}, nil
}

// UpdateTimesheetRequest changes the fields it carries.
type UpdateTimesheetRequest struct {
	TaskID    *int64  `json:"task_id"    validate:"omitnil,gt=0"`
	StartTime *string `json:"start_time" validate:"omitnil,timestamp"`
	EndTime   *string `json:"end_time"   validate:"omitnil,timestamp"`
	Note      *string `json:"note"       validate:"omitnil,max=1000"`
}

// Prepare implements Preparer.
func (r *UpdateTimesheetRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Note)
}

// References implements Referencer.
func (r *UpdateTimesheetRequest) References() []Reference {
	return []Reference{ref("task_id", "tasks", r.TaskID)}
}

// Apply implements Updater.
func (r *UpdateTimesheetRequest) Apply(t *domain.Timesheet, _ time.Time) error {
	set(&t.TaskID, r.TaskID)
	if r.StartTime != nil {
		t.StartTime = timestamp(*r.StartTime)
	}
	if r.EndTime != nil {
		end := timestamp(*r.EndTime)
		t.EndTime = &end
	}
	if t.EndTime != nil && !t.EndTime.After(t.StartTime) {
		return domain.NewStateError("end_time", "The end time must be a date after start time.")
	}
	set(&t.Note, r.Note)
	return nil
}

// StartTimerRequest starts a running timer on a task.
type StartTimerRequest struct {
	TaskID int64  `json:"task_id" validate:"required,gt=0"`
	Note   string `json:"note"    validate:"max=1000"`
}

// Prepare implements Preparer.
func (r *StartTimerRequest) Prepare(s *Sanitizer) {
	r.Note = s.Text(r.Note)
}

// References implements Referencer.
func (r *StartTimerRequest) References() []Reference {
	return []Reference{{Field: "task_id", Table: "tasks", ID: r.TaskID}}
}

// New builds the running timer for actor starting at now.
func (r *StartTimerRequest) New(actor int64, now time.Time) (*domain.Timesheet, error) {
	return &domain.Timesheet{TaskID: r.TaskID, StaffID: actor, StartTime: now, Note: r.Note}, nil
}
