package domain

import "time"

// Priority ranks tasks and tickets.
type Priority string

// Priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

// Task statuses.
const (
	TaskNotStarted       TaskStatus = "not_started"
	TaskInProgress       TaskStatus = "in_progress"
	TaskTesting          TaskStatus = "testing"
	TaskAwaitingFeedback TaskStatus = "awaiting_feedback"
	TaskCompleted        TaskStatus = "completed"
)

// Task is a unit of work, optionally attached to another CRM record.
type Task struct {
	Model
	Name        string
	Description string
	Priority    Priority
	Status      TaskStatus
	StartDate   *time.Time
	DueDate     *time.Time
	Related     *ModelRef
	AssignedTo  *int64
	CreatedBy   int64
	CompletedAt *time.Time
}

// IsOverdue reports whether the due date is before today and the task is
// not completed.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == TaskCompleted {
		return false
	}
	return truncateDay(*t.DueDate).Before(truncateDay(now))
}

// SetStatus changes the status and keeps CompletedAt consistent with it.
func (t *Task) SetStatus(status TaskStatus, now time.Time) {
	switch {
	case status == TaskCompleted && t.Status != TaskCompleted:
		t.CompletedAt = &now
	case status != TaskCompleted:
		t.CompletedAt = nil
	}
	t.Status = status
}

// Complete marks the task completed.
func (t *Task) Complete(now time.Time) error {
	if t.Status == TaskCompleted {
		return NewStateError("status", "The task is already completed.")
	}
	t.SetStatus(TaskCompleted, now)
	return nil
}
