package domain

import (
	"strings"
	"time"
)

// Staff is a CRM staff member, the only kind of user that can sign in to
// the mobile app.
type Staff struct {
	Model
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
	IsAdmin      bool
	Active       bool
	AvatarURL    string
	LastLoginAt  *time.Time
}

// FullName joins first and last name.
func (s *Staff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
