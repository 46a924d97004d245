package domain

import "time"

// Todo is a personal checklist item owned by one staff member.
type Todo struct {
	Model
	StaffID     int64
	Description string
	Finished    bool
	FinishedAt  *time.Time
	ItemOrder   int
}

// SetFinished marks the todo finished or open again.
func (t *Todo) SetFinished(finished bool, now time.Time) {
	t.Finished = finished
	if finished {
		t.FinishedAt = &now
	} else {
		t.FinishedAt = nil
	}
}

// Toggle flips the finished flag.
func (t *Todo) Toggle(now time.Time) {
	t.SetFinished(!t.Finished, now)
}
