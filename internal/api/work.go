package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/resource"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// TaskHandler serves /tasks.
type TaskHandler struct {
	*crud[*domain.Task, resource.TaskResource]
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(d Deps, tasks store.TaskStore) *TaskHandler {
	b := newBase(d, "task_handler")
	return &TaskHandler{crud: &crud[*domain.Task, resource.TaskResource]{
		base:      b,
		noun:      "Task",
		store:     tasks,
		present:   clocked(b, resource.NewTask),
		newCreate: func() request.Creator[*domain.Task] { return &request.CreateTaskRequest{} },
		newUpdate: func() request.Updater[*domain.Task] { return &request.UpdateTaskRequest{} },
	}}
}

// Routes registers the task routes.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		h.mount(r)
		r.Post("/{id}/complete", h.action("Task marked as complete.", (*domain.Task).Complete))
		r.Patch("/{id}/status", actionWith(h.crud, "Task status updated successfully.",
			func(body *request.TaskStatusRequest, t *domain.Task, now time.Time) error {
				t.SetStatus(domain.TaskStatus(body.Status), now)
				return nil
			}))
	})
}

// MeetingHandler serves /meetings.
type MeetingHandler struct {
	*crud[*domain.Meeting, resource.MeetingResource]
}

// NewMeetingHandler creates a MeetingHandler.
func NewMeetingHandler(d Deps, meetings store.MeetingStore) *MeetingHandler {
	return &MeetingHandler{crud: &crud[*domain.Meeting, resource.MeetingResource]{
		base:      newBase(d, "meeting_handler"),
		noun:      "Meeting",
		store:     meetings,
		present:   plain(resource.NewMeeting),
		newCreate: func() request.Creator[*domain.Meeting] { return &request.CreateMeetingRequest{} },
		newUpdate: func() request.Updater[*domain.Meeting] { return &request.UpdateMeetingRequest{} },
	}}
}

// Routes registers the meeting routes.
func (h *MeetingHandler) Routes(r chi.Router) {
	r.Route("/meetings", func(r chi.Router) {
		h.mount(r)
		r.Post("/{id}/cancel", actionWith(h.crud, "Meeting cancelled.",
			func(body *request.CancelMeetingRequest, m *domain.Meeting, _ time.Time) error {
				return m.Cancel(body.Reason)
			}))
	})
}

// TodoHandler serves /todos. Todos are personal; staff only see their own.
type TodoHandler struct {
	*crud[*domain.Todo, resource.TodoResource]
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(d Deps, todos store.TodoStore) *TodoHandler {
	return &TodoHandler{crud: &crud[*domain.Todo, resource.TodoResource]{
		base:        newBase(d, "todo_handler"),
		noun:        "Todo",
		store:       todos,
		present:     plain(resource.NewTodo),
		newCreate:   func() request.Creator[*domain.Todo] { return &request.CreateTodoRequest{} },
		newUpdate:   func() request.Updater[*domain.Todo] { return &request.UpdateTodoRequest{} },
		owns:        func(t *domain.Todo, actor int64) bool { return t.StaffID == actor },
		ownerFilter: "staff_id",
	}}
}

// Routes registers the todo routes.
func (h *TodoHandler) Routes(r chi.Router) {
	r.Route("/todos", func(r chi.Router) {
		h.mount(r)
		r.Post("/{id}/toggle", h.action("Todo updated successfully.", func(t *domain.Todo, now time.Time) error {
			t.Toggle(now)
			return nil
		}))
	})
}

// TimesheetHandler serves /timesheets, including the start/stop timer.
type TimesheetHandler struct {
	*crud[*domain.Timesheet, resource.TimesheetResource]
	timesheets store.TimesheetStore
}

// NewTimesheetHandler creates a TimesheetHandler.
func NewTimesheetHandler(d Deps, timesheets store.TimesheetStore) *TimesheetHandler {
	b := newBase(d, "timesheet_handler")
	return &TimesheetHandler{
		crud: &crud[*domain.Timesheet, resource.TimesheetResource]{
			base:      b,
			noun:      "Timesheet",
			store:     timesheets,
			present:   clocked(b, resource.NewTimesheet),
			newCreate: func() request.Creator[*domain.Timesheet] { return &request.CreateTimesheetRequest{} },
			newUpdate: func() request.Updater[*domain.Timesheet] { return &request.UpdateTimesheetRequest{} },
		},
		timesheets: timesheets,
	}
}

// Routes registers the timesheet routes.
func (h *TimesheetHandler) Routes(r chi.Router) {
	r.Route("/timesheets", func(r chi.Router) {
		r.Post("/start", h.Start)
		h.mount(r)
		r.Post("/{id}/stop", h.action("Timer stopped.", (*domain.Timesheet).Stop))
	})
}

// Start handles POST /timesheets/start. A staff member runs at most one
// timer at a time.
func (h *TimesheetHandler) Start(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req request.StartTimerRequest
	if !h.bind(w, r, &req) {
		return
	}

	running, err := h.timesheets.FindRunning(r.Context(), actor)
	switch {
	case err == nil:
		HandleAPIError(w, r, domain.NewStateError("task_id",
			"A timer is already running on task %d. Stop it before starting another.", running.TaskID))
		return
	case !errors.Is(err, store.ErrNotFound):
		HandleAPIError(w, r, fmt.Errorf("find running timer: %w", err))
		return
	}

	t, err := req.New(actor, h.now())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.timesheets.Create(r.Context(), t); err != nil {
		HandleAPIError(w, r, fmt.Errorf("start timer: %w", err))
		return
	}
	h.respond(w, r, http.StatusCreated, "Timer started.", t)
}

// ReminderHandler serves /reminders. Staff see reminders addressed to them
// and those they created.
type ReminderHandler struct {
	*crud[*domain.Reminder, resource.ReminderResource]
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(d Deps, reminders store.ReminderStore) *ReminderHandler {
	b := newBase(d, "reminder_handler")
	return &ReminderHandler{crud: &crud[*domain.Reminder, resource.ReminderResource]{
		base:      b,
		noun:      "Reminder",
		store:     reminders,
		present:   clocked(b, resource.NewReminder),
		newCreate: func() request.Creator[*domain.Reminder] { return &request.CreateReminderRequest{} },
		newUpdate: func() request.Updater[*domain.Reminder] { return &request.UpdateReminderRequest{} },
		owns: func(rem *domain.Reminder, actor int64) bool {
			return rem.StaffID == actor || rem.CreatedBy == actor
		},
		ownerFilter: "staff_id",
	}}
}

// Routes registers the reminder routes.
func (h *ReminderHandler) Routes(r chi.Router) {
	r.Route("/reminders", func(r chi.Router) {
		h.mount(r)
		r.Post("/{id}/snooze", actionWith(h.crud, "Reminder snoozed.",
			func(body *request.SnoozeRequest, rem *domain.Reminder, now time.Time) error {
				return rem.Snooze(body.Minutes, now)
			}))
		r.Post("/{id}/dismiss", h.action("Reminder dismissed.", func(rem *domain.Reminder, _ time.Time) error {
			rem.Dismiss()
			return nil
		}))
	})
}

// NoteHandler serves /notes. Filter with model_type and model_id to list
// the notes of one record.
type NoteHandler struct {
	*crud[*domain.Note, resource.NoteResource]
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(d Deps, notes store.NoteStore) *NoteHandler {
	return &NoteHandler{crud: &crud[*domain.Note, resource.NoteResource]{
		base:      newBase(d, "note_handler"),
		noun:      "Note",
		store:     notes,
		present:   plain(resource.NewNote),
		newCreate: func() request.Creator[*domain.Note] { return &request.CreateNoteRequest{} },
		newUpdate: func() request.Updater[*domain.Note] { return &request.UpdateNoteRequest{} },
	}}
}

// Routes registers the note routes.
func (h *NoteHandler) Routes(r chi.Router) {
	r.Route("/notes", h.mount)
}

// CommentHandler serves /comments.
type CommentHandler struct {
	*crud[*domain.Comment, resource.CommentResource]
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(d Deps, comments store.CommentStore) *CommentHandler {
	return &CommentHandler{crud: &crud[*domain.Comment, resource.CommentResource]{
		base:      newBase(d, "comment_handler"),
		noun:      "Comment",
		store:     comments,
		present:   plain(resource.NewComment),
		newCreate: func() request.Creator[*domain.Comment] { return &request.CreateCommentRequest{} },
		newUpdate: func() request.Updater[*domain.Comment] { return &request.UpdateCommentRequest{} },
	}}
}

// Routes registers the comment routes.
func (h *CommentHandler) Routes(r chi.Router) {
	r.Route("/comments", h.mount)
}

// GoalHandler serves /goals with progress measured by the store.
type GoalHandler struct {
	*crud[*domain.Goal, resource.GoalResource]
	goals store.GoalStore
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(d Deps, goals store.GoalStore) *GoalHandler {
	h := &GoalHandler{goals: goals}
	h.crud = &crud[*domain.Goal, resource.GoalResource]{
		base:      newBase(d, "goal_handler"),
		noun:      "Goal",
		store:     goals,
		present:   h.presentGoal,
		newCreate: func() request.Creator[*domain.Goal] { return &request.CreateGoalRequest{} },
		newUpdate: func() request.Updater[*domain.Goal] { return &request.UpdateGoalRequest{} },
	}
	return h
}

// Routes registers the goal routes.
func (h *GoalHandler) Routes(r chi.Router) {
	r.Route("/goals", h.mount)
}

func (h *GoalHandler) presentGoal(r *http.Request, g *domain.Goal) (resource.GoalResource, error) {
	achieved, err := h.goals.Achieved(r.Context(), g)
	if err != nil {
		return resource.GoalResource{}, fmt.Errorf("measure goal %d: %w", g.ID, err)
	}
	return resource.NewGoal(g, achieved), nil
}
