package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/crm-mobile-api/internal/api/resource"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// DashboardHandler serves the home screen counters.
type DashboardHandler struct {
	base
	dashboard store.DashboardStore
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(d Deps, dashboard store.DashboardStore) *DashboardHandler {
	return &DashboardHandler{base: newBase(d, "dashboard_handler"), dashboard: dashboard}
}

// Routes registers GET /dashboard.
func (h *DashboardHandler) Routes(r chi.Router) {
	r.Get("/dashboard", h.Summary)
}

// Summary handles GET /dashboard.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	summary, err := h.dashboard.Summary(r.Context(), actor, h.now())
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("dashboard summary for staff %d: %w", actor, err))
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, resource.NewDashboard(summary))
}

// CommonHandler serves the lookup data the app caches on start up.
type CommonHandler struct {
	base
	options store.OptionStore
	staff   store.StaffStore
	stages  store.PipelineStageStore
}

// NewCommonHandler creates a CommonHandler.
func NewCommonHandler(
	d Deps,
	options store.OptionStore,
	staff store.StaffStore,
	stages store.PipelineStageStore,
) *CommonHandler {
	return &CommonHandler{
		base:    newBase(d, "common_handler"),
		options: options,
		staff:   staff,
		stages:  stages,
	}
}

// Routes registers the /common routes.
func (h *CommonHandler) Routes(r chi.Router) {
	r.Route("/common", func(r chi.Router) {
		r.Get("/business-info", h.BusinessInfo)
		r.Get("/staff", h.Staff)
		r.Get("/options", h.Options)
		r.Get("/pipeline-stages", h.PipelineStages)
	})
}

// BusinessInfo handles GET /common/business-info.
func (h *CommonHandler) BusinessInfo(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options.Get(r.Context(), domain.BusinessInfoKeys...)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("load business options: %w", err))
		return
	}
	info := domain.BusinessInfoFromOptions(opts)
	shared.RespondWithData(w, r, http.StatusOK, resource.NewBusinessInfo(info))
}

// Staff handles GET /common/staff. Only active staff are listed.
func (h *CommonHandler) Staff(w http.ResponseWriter, r *http.Request) {
	params := h.listParams(r).WithFilter("active", "true")
	page, err := h.staff.List(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("list staff: %w", err))
		return
	}
	c := resource.NewCollection(page, resource.NewStaff)
	shared.RespondWithPage(w, r, c.Items, c.Meta)
}

// Options handles GET /common/options. Only whitelisted keys are exposed.
func (h *CommonHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options.Get(r.Context(), domain.PublicOptions...)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("load public options: %w", err))
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, resource.NewOptions(opts))
}

// PipelineStages handles GET /common/pipeline-stages.
func (h *CommonHandler) PipelineStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.stages.All(r.Context())
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("list pipeline stages: %w", err))
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, resource.List(stages, resource.NewPipelineStage))
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler answers the load balancer probe.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler. A nil db skips the database
// check.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Routes registers GET /health.
func (h *HealthHandler) Routes(r chi.Router) {
	r.Get("/health", h.Check)
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "skipped"}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
				"Service unavailable.", fmt.Errorf("health ping: %w", err))
			return
		}
		status["database"] = "ok"
	}
	shared.RespondWithData(w, r, http.StatusOK, status)
}
