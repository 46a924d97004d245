package domain

import "time"

// Timesheet is time logged by a staff member against a task. A timesheet
// with no end time is a running timer.
type Timesheet struct {
	Model
	TaskID    int64
	StaffID   int64
	StartTime time.Time
	EndTime   *time.Time
	Note      string
}

// Running reports whether the timer is still going.
func (t *Timesheet) Running() bool {
	return t.EndTime == nil
}

// Duration is end minus start, or now minus start while running.
func (t *Timesheet) Duration(now time.Time) time.Duration {
	end := now
	if t.EndTime != nil {
		end = *t.EndTime
	}
	if end.Before(t.StartTime) {
		return 0
	}
	return end.Sub(t.StartTime)
}

// Stop ends a running timer at now.
func (t *Timesheet) Stop(now time.Time) error {
	if !t.Running() {
		return NewStateError("end_time", "The timer has already been stopped.")
	}
	if now.Before(t.StartTime) {
		return NewStateError("end_time", "The end time must be after the start time.")
	}
	t.EndTime = &now
	return nil
}
