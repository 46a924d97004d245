package mocks

import "errors"

// ErrPasswordMismatch is returned by PasswordVerifier for wrong passwords.
var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordVerifier implements auth.PasswordVerifier by comparing the
// plaintext with the stored hash directly.
type PasswordVerifier struct {
	// CompareFn overrides the comparison when set.
	CompareFn func(hashedPassword, password string) error

	// CallCount tracks how many times Compare was called.
	CallCount int
}

// Compare implements auth.PasswordVerifier.
func (m *PasswordVerifier) Compare(hashedPassword, password string) error {
	m.CallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != password {
		return ErrPasswordMismatch
	}
	return nil
}
