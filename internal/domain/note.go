package domain

// Note is a rich-text note attached to a CRM record.
type Note struct {
	Model
	Related     ModelRef
	Description string
	CreatedBy   int64
}

// Comment is a staff comment on a CRM record.
type Comment struct {
	Model
	Related ModelRef
	Content string
	StaffID int64
}
