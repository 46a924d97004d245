package domain

import "time"

// Reminder notifies a staff member about a CRM record at a given time.
type Reminder struct {
	Model
	Related       ModelRef
	Description   string
	RemindAt      time.Time
	StaffID       int64
	NotifyByEmail bool
	IsNotified    bool
	CreatedBy     int64
}

// Snooze pushes the reminder minutes past the later of now and its current
// time, and re-arms it.
func (r *Reminder) Snooze(minutes int, now time.Time) error {
	if minutes <= 0 {
		return NewStateError("minutes", "The minutes must be at least 1.")
	}
	base := r.RemindAt
	if now.After(base) {
		base = now
	}
	r.RemindAt = base.Add(time.Duration(minutes) * time.Minute)
	r.IsNotified = false
	return nil
}

// Dismiss marks the reminder as handled.
func (r *Reminder) Dismiss() {
	r.IsNotified = true
}

// Due reports whether the reminder should fire at now.
func (r *Reminder) Due(now time.Time) bool {
	return !r.IsNotified && !r.RemindAt.After(now)
}
