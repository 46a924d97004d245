package resource

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// TaskResource is a task.
type TaskResource struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	StartDate   *string  `json:"start_date"`
	DueDate     *string  `json:"due_date"`
	IsOverdue   bool     `json:"is_overdue"`
	Related     *Related `json:"related"`
	AssignedTo  *int64   `json:"assigned_to"`
	CreatedBy   int64    `json:"created_by"`
	CompletedAt *string  `json:"completed_at"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// NewTask transforms a task, judging overdue against now.
func NewTask(t *domain.Task, now time.Time) TaskResource {
	return TaskResource{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		StartDate:   datePtr(t.StartDate),
		DueDate:     datePtr(t.DueDate),
		IsOverdue:   t.IsOverdue(now),
		Related:     related(t.Related),
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		CompletedAt: timestampPtr(t.CompletedAt),
		CreatedAt:   timestamp(t.CreatedAt),
		UpdatedAt:   timestamp(t.UpdatedAt),
	}
}

// MeetingResource is a meeting.
type MeetingResource struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	StartAt         string   `json:"start_at"`
	EndAt           string   `json:"end_at"`
	DurationMinutes int      `json:"duration_minutes"`
	Status          string   `json:"status"`
	Related         *Related `json:"related"`
	OrganizerID     int64    `json:"organizer_id"`
	CancelReason    string   `json:"cancel_reason"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// NewMeeting transforms a meeting.
func NewMeeting(m *domain.Meeting) MeetingResource {
	return MeetingResource{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Location:        m.Location,
		StartAt:         timestamp(m.StartAt),
		EndAt:           timestamp(m.EndAt),
		DurationMinutes: int(m.Duration().Minutes()),
		Status:          string(m.Status),
		Related:         related(m.Related),
		OrganizerID:     m.OrganizerID,
		CancelReason:    m.CancelReason,
		CreatedAt:       timestamp(m.CreatedAt),
		UpdatedAt:       timestamp(m.UpdatedAt),
	}
}

// TodoResource is a todo item.
type TodoResource struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Finished    bool    `json:"finished"`
	FinishedAt  *string `json:"finished_at"`
	ItemOrder   int     `json:"item_order"`
	CreatedAt   string  `json:"created_at"`
}

// NewTodo transforms a todo.
func NewTodo(t *domain.Todo) TodoResource {
	return TodoResource{
		ID:          t.ID,
		Description: t.Description,
		Finished:    t.Finished,
		FinishedAt:  timestampPtr(t.FinishedAt),
		ItemOrder:   t.ItemOrder,
		CreatedAt:   timestamp(t.CreatedAt),
	}
}

// TimesheetResource is logged time. Running timers report the time
// elapsed so far.
type TimesheetResource struct {
	ID              int64   `json:"id"`
	TaskID          int64   `json:"task_id"`
	StaffID         int64   `json:"staff_id"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time"`
	DurationSeconds int64   `json:"duration_seconds"`
	IsRunning       bool    `json:"is_running"`
	Note            string  `json:"note"`
	CreatedAt       string  `json:"created_at"`
}

// NewTimesheet transforms a timesheet with durations measured to now.
func NewTimesheet(t *domain.Timesheet, now time.Time) TimesheetResource {
	return TimesheetResource{
		ID:              t.ID,
		TaskID:          t.TaskID,
		StaffID:         t.StaffID,
		StartTime:       timestamp(t.StartTime),
		EndTime:         timestampPtr(t.EndTime),
		DurationSeconds: int64(t.Duration(now).Seconds()),
		IsRunning:       t.Running(),
		Note:            t.Note,
		CreatedAt:       timestamp(t.CreatedAt),
	}
}

// ReminderResource is a reminder.
type ReminderResource struct {
	ID            int64   `json:"id"`
	Related       Related `json:"related"`
	Description   string  `json:"description"`
	RemindAt      string  `json:"date"`
	StaffID       int64   `json:"staff_id"`
	NotifyByEmail bool    `json:"notify_by_email"`
	IsNotified    bool    `json:"is_notified"`
	IsDue         bool    `json:"is_due"`
	CreatedBy     int64   `json:"created_by"`
	CreatedAt     string  `json:"created_at"`
}

// NewReminder transforms a reminder.
func NewReminder(r *domain.Reminder, now time.Time) ReminderResource {
	return ReminderResource{
		ID:            r.ID,
		Related:       Related{Type: string(r.Related.Type), ID: r.Related.ID},
		Description:   r.Description,
		RemindAt:      timestamp(r.RemindAt),
		StaffID:       r.StaffID,
		NotifyByEmail: r.NotifyByEmail,
		IsNotified:    r.IsNotified,
		IsDue:         r.Due(now),
		CreatedBy:     r.CreatedBy,
		CreatedAt:     timestamp(r.CreatedAt),
	}
}

// NoteResource is a note.
type NoteResource struct {
	ID          int64   `json:"id"`
	Related     Related `json:"related"`
	Description string  `json:"description"`
	CreatedBy   int64   `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// NewNote transforms a note.
func NewNote(n *domain.Note) NoteResource {
	return NoteResource{
		ID:          n.ID,
		Related:     Related{Type: string(n.Related.Type), ID: n.Related.ID},
		Description: n.Description,
		CreatedBy:   n.CreatedBy,
		CreatedAt:   timestamp(n.CreatedAt),
		UpdatedAt:   timestamp(n.UpdatedAt),
	}
}

// CommentResource is a comment.
type CommentResource struct {
	ID        int64   `json:"id"`
	Related   Related `json:"related"`
	Content   string  `json:"content"`
	StaffID   int64   `json:"staff_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// NewComment transforms a comment.
func NewComment(c *domain.Comment) CommentResource {
	return CommentResource{
		ID:        c.ID,
		Related:   Related{Type: string(c.Related.Type), ID: c.Related.ID},
		Content:   c.Content,
		StaffID:   c.StaffID,
		CreatedAt: timestamp(c.CreatedAt),
		UpdatedAt: timestamp(c.UpdatedAt),
	}
}
