package request

import "strings"

// LoginRequest signs a staff member in on one device.
type LoginRequest struct {
	Email      string `json:"email"       validate:"required,email,max=191"`
	Password   string `json:"password"    validate:"required,max=255"`
	DeviceName string `json:"device_name" validate:"required,max=191"`
}

// Prepare implements Preparer.
func (r *LoginRequest) Prepare(s *Sanitizer) {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.DeviceName = s.Text(r.DeviceName)
}

// Check implements Checker.
func (r *LoginRequest) Check() map[string]string {
	if r.DeviceName == "" {
		return map[string]string{"device_name": "The device name field is required."}
	}
	return nil
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
