package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/platform/logger"
)

// RequireFeature hides a route group behind a feature flag. Disabled
// groups answer 404 as if they did not exist.
func RequireFeature(name string, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.FromContext(r.Context()).Debug("feature disabled", slog.String("feature", name))
			shared.RespondWithError(w, r, http.StatusNotFound, "Not Found.")
		})
	}
}
