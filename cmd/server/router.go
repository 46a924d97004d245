package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phrazzld/crm-mobile-api/internal/api"
	apiMiddleware "github.com/phrazzld/crm-mobile-api/internal/api/middleware"
	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/platform/logger"
)

// APIPrefix is the base path of every mobile endpoint.
const APIPrefix = "/api/v1"

type routable interface {
	Routes(r chi.Router)
}

// setupRouter builds the router with middleware and every route group.
func (app *application) setupRouter() http.Handler {
	cfg := app.config
	st := app.stores

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(logger.WithLogger(req.Context(), app.logger)))
		})
	})
	r.Use(apiMiddleware.TraceMiddleware)
	if cfg.Metrics.Enabled {
		r.Use(apiMiddleware.NewMetrics(app.registry).Handler)
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	}

	deps := api.Deps{
		Binder:     request.NewBinder(st.refs),
		Pagination: cfg.Pagination,
		Logger:     app.logger,
	}
	authHandler := api.NewAuthHandler(deps, app.authService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.authService)
	authLimiter := apiMiddleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthPerMinute)
	apiLimiter := apiMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	var pinger api.Pinger
	if app.db != nil {
		pinger = app.db
	}

	handlers := []routable{
		api.NewDashboardHandler(deps, st.dashboard),
		api.NewCommonHandler(deps, st.options, st.staff, st.stages),
		api.NewLeadHandler(deps, st.leads),
		api.NewClientHandler(deps, st.clients),
		api.NewDealHandler(deps, st.deals, st.stages),
		api.NewProposalHandler(deps, st.proposals),
		api.NewEstimateHandler(deps, st.estimates, st.options),
		api.NewEstimateRequestHandler(deps, st.estimateRequests),
		api.NewTaskHandler(deps, st.tasks),
		api.NewMeetingHandler(deps, st.meetings),
		api.NewTodoHandler(deps, st.todos),
		api.NewNoteHandler(deps, st.notes),
		api.NewCommentHandler(deps, st.comments),
		api.NewReminderHandler(deps, st.reminders),
		api.NewGoalHandler(deps, st.goals),
		api.NewTicketHandler(deps, st.tickets),
	}
	gated := []struct {
		feature string
		enabled bool
		handler routable
	}{
		{"chat", cfg.Features.Chat, api.NewChatHandler(deps, st.chat)},
		{"email", cfg.Features.Email, api.NewEmailHandler(deps, st.emailAccounts, st.emailSignatures, st.emailMessages)},
		{"timesheets", cfg.Features.Timesheets, api.NewTimesheetHandler(deps, st.timesheets)},
	}

	r.Route(APIPrefix, func(r chi.Router) {
		api.NewHealthHandler(pinger).Routes(r)

		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Handler)
			authHandler.PublicRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(apiLimiter.Handler)

			authHandler.Routes(r)
			for _, h := range handlers {
				h.Routes(r)
			}
		})

		// A disabled feature answers 404 before the token is looked at.
		for _, g := range gated {
			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireFeature(g.feature, g.enabled))
				r.Use(authMiddleware.Authenticate)
				r.Use(apiLimiter.Handler)
				g.handler.Routes(r)
			})
		}
	})

	return r
}
