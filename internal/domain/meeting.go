package domain

import "time"

// MeetingStatus is the lifecycle state of a meeting.
type MeetingStatus string

// Meeting statuses.
const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

// Meeting is a scheduled appointment.
type Meeting struct {
	Model
	Title        string
	Description  string
	Location     string
	StartAt      time.Time
	EndAt        time.Time
	Status       MeetingStatus
	Related      *ModelRef
	OrganizerID  int64
	CancelReason string
}

// Duration is the scheduled length of the meeting.
func (m *Meeting) Duration() time.Duration {
	if m.EndAt.Before(m.StartAt) {
		return 0
	}
	return m.EndAt.Sub(m.StartAt)
}

// Cancel cancels a scheduled meeting.
func (m *Meeting) Cancel(reason string) error {
	if m.Status != MeetingScheduled {
		return NewStateError("status", "Only scheduled meetings can be cancelled.")
	}
	m.Status = MeetingCancelled
	m.CancelReason = reason
	return nil
}
