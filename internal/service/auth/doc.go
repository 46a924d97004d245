// Package auth issues and verifies the per-device bearer tokens used by the
// mobile app.
//
// Every token is an HS256 JWT whose jti is a row in mobile_api_tokens. An
// access token and a refresh token issued together share a pair id and are
// revoked together on logout or refresh.
package auth
