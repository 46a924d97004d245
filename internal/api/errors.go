package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so that
// internal error types never decide the response on their own.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Validation and state errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidModelType),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInactiveStaff):
		return http.StatusUnprocessableEntity

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrConflict):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that leaks no
// internal detail.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Unauthenticated."

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "These credentials do not match our records."

	case errors.Is(err, auth.ErrInactiveStaff):
		return "This account has been deactivated."

	case errors.Is(err, domain.ErrUnauthorized):
		return "This action is unauthorized."

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found."

	case errors.Is(err, store.ErrDuplicate):
		return "The resource already exists."

	case errors.Is(err, store.ErrConflict):
		return "The resource was modified by another request. Please retry."

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidModelType),
		errors.Is(err, store.ErrInvalidEntity):
		return request.DefaultMessage

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err. Validation and state errors
// become 422 responses with per-field messages; everything else is mapped
// through MapErrorToStatusCode and logged redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *request.ValidationError
	if errors.As(err, &ve) {
		shared.RespondWithValidation(w, r, ve.Message, ve.Errors)
		return
	}
	if ve, ok := request.FromStateError(err); ok {
		shared.RespondWithValidation(w, r, ve.Message, ve.Errors)
		return
	}

	status := MapErrorToStatusCode(err)
	var opts []shared.ResponseOption
	if status == http.StatusConflict {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}
