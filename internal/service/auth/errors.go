package auth

import "errors"

// Token and login errors. Handlers map the token errors to 401 on protected
// routes and to a refresh_token validation error on refresh.
var (
	// ErrInvalidToken indicates the token is malformed, badly signed or
	// unknown to the token store.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrWrongTokenType indicates a refresh token was used as an access
	// token or the other way round.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrRevokedToken indicates the token was revoked by logout, a newer
	// login on the same device, or a refresh.
	ErrRevokedToken = errors.New("authentication token has been revoked")

	// ErrInvalidCredentials indicates the email or password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInactiveStaff indicates the staff account is disabled.
	ErrInactiveStaff = errors.New("staff account is inactive")
)
