package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/config"
	"github.com/phrazzld/crm-mobile-api/internal/platform/logger"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// Deps are the collaborators shared by every handler.
type Deps struct {
	Binder     *request.Binder
	Pagination config.PaginationConfig
	Logger     *slog.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// base carries the shared request plumbing handlers embed.
type base struct {
	binder     *request.Binder
	pagination config.PaginationConfig
	logger     *slog.Logger
	clock      func() time.Time
}

func newBase(d Deps, component string) base {
	if d.Binder == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("binder cannot be nil for " + component)
	}
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}
	return base{
		binder:     d.Binder,
		pagination: d.Pagination,
		logger:     log.With(slog.String("component", component)),
		clock:      clock,
	}
}

func (b base) now() time.Time {
	return b.clock().UTC()
}

func (b base) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), b.logger)
}

// bind decodes and validates the body into dst, writing the error
// response itself when that fails.
func (b base) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := b.binder.Bind(r, dst); err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	return true
}

// actor returns the authenticated staff id. Routes using it sit behind the
// auth middleware, so a missing session is answered as unauthenticated.
func (b base) actor(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := shared.StaffID(r.Context())
	if !ok {
		b.log(r).Warn("staff session missing from request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthenticated.")
		return 0, false
	}
	return id, true
}

// pathID parses the {id} URL parameter. Anything that is not a positive
// integer cannot name a record and is answered with 404.
func (b base) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return b.pathParam(w, r, "id")
}

func (b base) pathParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := parseID(chi.URLParam(r, name))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, "Resource not found.", err)
		return 0, false
	}
	return id, true
}

var errBadID = errors.New("invalid record id")

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, errBadID
	}
	return id, nil
}

// Reserved query parameters; every other parameter is an equality filter.
const (
	paramPage      = "page"
	paramPerPage   = "per_page"
	paramSearch    = "search"
	paramSort      = "sort"
	paramDirection = "direction"
)

// listParams reads paging, search, sort and filters from the query string.
// Stores ignore filter keys outside their whitelist.
func (b base) listParams(r *http.Request) store.ListParams {
	q := r.URL.Query()
	p := store.ListParams{
		Search:  q.Get(paramSearch),
		Sort:    q.Get(paramSort),
		Desc:    strings.EqualFold(q.Get(paramDirection), "desc"),
		Filters: map[string]string{},
	}
	p.Page, _ = strconv.Atoi(q.Get(paramPage))
	p.PerPage, _ = strconv.Atoi(q.Get(paramPerPage))
	for key, values := range q {
		switch key {
		case paramPage, paramPerPage, paramSearch, paramSort, paramDirection:
			continue
		}
		if len(values) > 0 && values[0] != "" {
			p.Filters[key] = values[0]
		}
	}
	return p.Normalize(b.pagination.DefaultPerPage, b.pagination.MaxPerPage)
}
