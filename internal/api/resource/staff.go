package resource

import "github.com/phrazzld/crm-mobile-api/internal/domain"

// StaffResource is a staff member without credentials.
type StaffResource struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	IsAdmin     bool    `json:"is_admin"`
	Active      bool    `json:"active"`
	AvatarURL   string  `json:"avatar_url"`
	LastLoginAt *string `json:"last_login_at"`
	CreatedAt   string  `json:"created_at"`
}

// NewStaff transforms a staff member.
func NewStaff(s *domain.Staff) StaffResource {
	return StaffResource{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		FullName:    s.FullName(),
		Email:       s.Email,
		Phone:       s.Phone,
		IsAdmin:     s.IsAdmin,
		Active:      s.Active,
		AvatarURL:   s.AvatarURL,
		LastLoginAt: timestampPtr(s.LastLoginAt),
		CreatedAt:   timestamp(s.CreatedAt),
	}
}
