package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/resource"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// presenter transforms one record for a response.
type presenter[E, T any] func(r *http.Request, e E) (T, error)

// plain adapts a transformer that needs nothing but the record.
func plain[E, T any](fn func(E) T) presenter[E, T] {
	return func(_ *http.Request, e E) (T, error) { return fn(e), nil }
}

// clocked adapts a transformer that derives values from the current time.
func clocked[E, T any](b base, fn func(E, time.Time) T) presenter[E, T] {
	return func(_ *http.Request, e E) (T, error) { return fn(e, b.now()), nil }
}

// crud serves the five standard routes of one CRM resource.
type crud[E domain.Entity, T any] struct {
	base
	noun        string
	store       store.EntityStore[E]
	present     presenter[E, T]
	presentList func(r *http.Request, items []E) ([]T, error)
	newCreate   func() request.Creator[E]
	newUpdate   func() request.Updater[E]

	// owns, when set, hides records the actor may not see. ownerFilter is
	// the list filter that applies the same restriction in the store.
	owns        func(e E, actor int64) bool
	ownerFilter string
}

// mount registers list, create, show, update and delete on r.
func (c *crud[E, T]) mount(r chi.Router) {
	r.Get("/", c.List)
	r.Post("/", c.Create)
	r.Get("/{id}", c.Show)
	r.Put("/{id}", c.Update)
	r.Delete("/{id}", c.Delete)
}

// List handles GET /x.
func (c *crud[E, T]) List(w http.ResponseWriter, r *http.Request) {
	params := c.listParams(r)
	if c.ownerFilter != "" {
		actor, ok := c.actor(w, r)
		if !ok {
			return
		}
		params = params.WithFilter(c.ownerFilter, strconv.FormatInt(actor, 10))
	}

	page, err := c.store.List(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("list %s: %w", c.noun, err))
		return
	}
	items, err := c.presentAll(r, page.Items)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithPage(w, r, items, resource.PageMeta(page))
}

func (c *crud[E, T]) presentAll(r *http.Request, es []E) ([]T, error) {
	if c.presentList != nil {
		return c.presentList(r, es)
	}
	out := make([]T, len(es))
	for i, e := range es {
		t, err := c.present(r, e)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// Show handles GET /x/{id}.
func (c *crud[E, T]) Show(w http.ResponseWriter, r *http.Request) {
	e, ok := c.load(w, r)
	if !ok {
		return
	}
	c.respond(w, r, http.StatusOK, "", e)
}

// Create handles POST /x.
func (c *crud[E, T]) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := c.actor(w, r)
	if !ok {
		return
	}
	req := c.newCreate()
	if !c.bind(w, r, req) {
		return
	}
	e, err := req.New(actor, c.now())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := c.store.Create(r.Context(), e); err != nil {
		HandleAPIError(w, r, fmt.Errorf("create %s: %w", c.noun, err))
		return
	}
	c.respond(w, r, http.StatusCreated, c.message("created"), e)
}

// Update handles PUT /x/{id}.
func (c *crud[E, T]) Update(w http.ResponseWriter, r *http.Request) {
	e, ok := c.load(w, r)
	if !ok {
		return
	}
	req := c.newUpdate()
	if !c.bind(w, r, req) {
		return
	}
	if err := req.Apply(e, c.now()); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	c.save(w, r, e, c.message("updated"))
}

// Delete handles DELETE /x/{id}.
func (c *crud[E, T]) Delete(w http.ResponseWriter, r *http.Request) {
	e, ok := c.load(w, r)
	if !ok {
		return
	}
	if err := c.store.Delete(r.Context(), e.Meta().ID); err != nil {
		HandleAPIError(w, r, fmt.Errorf("delete %s: %w", c.noun, err))
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, c.message("deleted"), nil)
}

// load fetches the record named by {id}, answering 404 for missing
// records and for records the actor may not see.
func (c *crud[E, T]) load(w http.ResponseWriter, r *http.Request) (E, bool) {
	var zero E
	id, ok := c.pathID(w, r)
	if !ok {
		return zero, false
	}
	e, err := c.store.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("get %s %d: %w", c.noun, id, err))
		return zero, false
	}
	if c.owns != nil {
		actor, ok := c.actor(w, r)
		if !ok {
			return zero, false
		}
		if !c.owns(e, actor) {
			HandleAPIError(w, r, fmt.Errorf("%s %d not visible to staff %d: %w", c.noun, id, actor, store.ErrNotFound))
			return zero, false
		}
	}
	return e, true
}

// save writes e back and answers with its new representation.
func (c *crud[E, T]) save(w http.ResponseWriter, r *http.Request, e E, message string) {
	if err := c.store.Update(r.Context(), e); err != nil {
		HandleAPIError(w, r, fmt.Errorf("update %s %d: %w", c.noun, e.Meta().ID, err))
		return
	}
	c.respond(w, r, http.StatusOK, message, e)
}

func (c *crud[E, T]) respond(w http.ResponseWriter, r *http.Request, status int, message string, e E) {
	data, err := c.present(r, e)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithMessage(w, r, status, message, data)
}

func (c *crud[E, T]) message(verb string) string {
	return fmt.Sprintf("%s %s successfully.", c.noun, verb)
}

// action builds a handler for a body-less state change such as
// POST /deals/{id}/won.
func (c *crud[E, T]) action(message string, fn func(e E, now time.Time) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, ok := c.load(w, r)
		if !ok {
			return
		}
		if err := fn(e, c.now()); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		c.save(w, r, e, message)
	}
}

// actionWith builds a handler for a state change that takes a validated
// body of type B.
func actionWith[B any, E domain.Entity, T any](
	c *crud[E, T],
	message string,
	fn func(body *B, e E, now time.Time) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, ok := c.load(w, r)
		if !ok {
			return
		}
		var body B
		if !c.bind(w, r, &body) {
			return
		}
		if err := fn(&body, e, c.now()); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		c.save(w, r, e, message)
	}
}
