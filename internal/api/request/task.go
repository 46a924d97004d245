package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateTaskRequest creates a task, optionally attached to a record.
type CreateTaskRequest struct {
	Name        string `json:"name"        validate:"required,max=191"`
	Description string `json:"description" validate:"max=10000"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Status      string `json:"status"      validate:"omitempty,oneof=not_started in_progress testing awaiting_feedback completed"`
	StartDate   string `json:"start_date"  validate:"omitempty,date"`
	DueDate     string `json:"due_date"    validate:"omitempty,date"`
	ModelType   string `json:"model_type"  validate:"omitempty,model_type"`
	ModelID     int64  `json:"model_id"    validate:"omitempty,gt=0"`
	AssignedTo  *int64 `json:"assigned_to" validate:"omitempty,gt=0"`
}

// Prepare implements Preparer.
func (r *CreateTaskRequest) Prepare(s *Sanitizer) {
	r.Name = s.Text(r.Name)
	r.Description = s.HTML(r.Description)
	if r.Priority == "" {
		r.Priority = string(domain.PriorityMedium)
	}
	if r.Status == "" {
		r.Status = string(domain.TaskNotStarted)
	}
}

// Check implements Checker.
func (r *CreateTaskRequest) Check() map[string]string {
	if errs := checkModelPair(r.ModelType, r.ModelID); errs != nil {
		return errs
	}
	return checkDateOrder(r.StartDate, r.DueDate, "due_date", "The due date must be a date after or equal to start date.")
}

// References implements Referencer.
func (r *CreateTaskRequest) References() []Reference {
	return []Reference{modelRef(r.ModelType, r.ModelID), ref("assigned_to", "staff", r.AssignedTo)}
}

// New builds the task as created by actor at now.
func (r *CreateTaskRequest) New(actor int64, now time.Time) (*domain.Task, error) {
	t := &domain.Task{
		Name:        r.Name,
		Description: r.Description,
		Priority:    domain.Priority(r.Priority),
		StartDate:   datePtr(&r.StartDate),
		DueDate:     datePtr(&r.DueDate),
		Related:     domain.NewModelRef(r.ModelType, r.ModelID),
		AssignedTo:  optionalID(r.AssignedTo),
		CreatedBy:   actor,
	}
	t.SetStatus(domain.TaskStatus(r.Status), now)
	return t, nil
}

// UpdateTaskRequest changes the fields it carries.
type UpdateTaskRequest struct {
	Name        *string `json:"name"        validate:"omitnil,notblank,max=191"`
	Description *string `json:"description" validate:"omitnil,max=10000"`
	Priority    *string `json:"priority"    validate:"omitnil,oneof=low medium high urgent"`
	Status      *string `json:"status"      validate:"omitnil,oneof=not_started in_progress testing awaiting_feedback completed"`
	StartDate   *string `json:"start_date"  validate:"omitnil,optional_date"`
	DueDate     *string `json:"due_date"    validate:"omitnil,optional_date"`
	ModelType   *string `json:"model_type"  validate:"omitnil,optional_model_type"`
	ModelID     *int64  `json:"model_id"    validate:"omitnil,gte=0"`
	AssignedTo  *int64  `json:"assigned_to" validate:"omitnil,gte=0"`
}

// Prepare implements Preparer.
func (r *UpdateTaskRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Name)
	s.HTMLPtr(r.Description)
}

// Check implements Checker.
func (r *UpdateTaskRequest) Check() map[string]string {
	if (r.ModelType == nil) != (r.ModelID == nil) {
		return map[string]string{"model_type": "The model type and model id fields must be sent together."}
	}
	return checkDateOrder(deref(r.StartDate), deref(r.DueDate), "due_date", "The due date must be a date after or equal to start date.")
}

// References implements Referencer.
func (r *UpdateTaskRequest) References() []Reference {
	return []Reference{modelRef(deref(r.ModelType), deref(r.ModelID)), ref("assigned_to", "staff", r.AssignedTo)}
}

// Apply implements Updater.
func (r *UpdateTaskRequest) Apply(t *domain.Task, now time.Time) error {
	set(&t.Name, r.Name)
	set(&t.Description, r.Description)
	setAs(&t.Priority, r.Priority)
	setDate(&t.StartDate, r.StartDate)
	setDate(&t.DueDate, r.DueDate)
	if r.ModelType != nil {
		t.Related = domain.NewModelRef(*r.ModelType, deref(r.ModelID))
	}
	setID(&t.AssignedTo, r.AssignedTo)
	if r.Status != nil {
		t.SetStatus(domain.TaskStatus(*r.Status), now)
	}
	return nil
}

// TaskStatusRequest changes only a task's status.
type TaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=not_started in_progress testing awaiting_feedback completed"`
}

// checkModelPair requires model_type and model_id to be sent together.
func checkModelPair(modelType string, modelID int64) map[string]string {
	switch {
	case modelType == "" && modelID != 0:
		return map[string]string{"model_type": "The model type field is required."}
	case modelType != "" && modelID == 0:
		return map[string]string{"model_id": "The model id field is required."}
	}
	return nil
}

// checkDateOrder reports field when both dates are set and end precedes
// start. Inputs have already passed the date rule.
func checkDateOrder(start, end, field, msg string) map[string]string {
	if start == "" || end == "" {
		return nil
	}
	if date(end).Before(date(start)) {
		return map[string]string{field: msg}
	}
	return nil
}
