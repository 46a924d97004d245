package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/resource"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// LeadHandler serves /leads.
type LeadHandler struct {
	*crud[*domain.Lead, resource.LeadResource]
	leads store.LeadStore
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(d Deps, leads store.LeadStore) *LeadHandler {
	b := newBase(d, "lead_handler")
	return &LeadHandler{
		crud: &crud[*domain.Lead, resource.LeadResource]{
			base:      b,
			noun:      "Lead",
			store:     leads,
			present:   plain(resource.NewLead),
			newCreate: func() request.Creator[*domain.Lead] { return &request.CreateLeadRequest{} },
			newUpdate: func() request.Updater[*domain.Lead] { return &request.UpdateLeadRequest{} },
		},
		leads: leads,
	}
}

// Routes registers the lead routes.
func (h *LeadHandler) Routes(r chi.Router) {
	r.Route("/leads", func(r chi.Router) {
		h.mount(r)
		r.Post("/{id}/convert", h.Convert)
		r.Patch("/{id}/status", actionWith(h.crud, "Lead status updated successfully.",
			func(body *request.LeadStatusRequest, l *domain.Lead, _ time.Time) error {
				return l.SetStatus(domain.LeadStatus(body.Status))
			}))
	})
}

// Convert handles POST /leads/{id}/convert. The body may override the
// client fields copied from the lead.
func (h *LeadHandler) Convert(w http.ResponseWriter, r *http.Request) {
	lead, ok := h.load(w, r)
	if !ok {
		return
	}
	var req request.ConvertLeadRequest
	if !h.bind(w, r, &req) {
		return
	}
	client, err := lead.ToClient(req.Overrides())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.leads.Convert(r.Context(), lead, client, h.now()); err != nil {
		HandleAPIError(w, r, fmt.Errorf("convert lead %d: %w", lead.ID, err))
		return
	}

	h.log(r).Info("lead converted",
		"lead_id", lead.ID,
		"client_id", client.ID)
	shared.RespondWithMessage(w, r, http.StatusCreated, "Lead converted to client successfully.",
		resource.ConversionResource{Lead: resource.NewLead(lead), Client: resource.NewClient(client)})
}

// ClientHandler serves /clients.
type ClientHandler struct {
	*crud[*domain.Client, resource.ClientResource]
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(d Deps, clients store.ClientStore) *ClientHandler {
	return &ClientHandler{crud: &crud[*domain.Client, resource.ClientResource]{
		base:      newBase(d, "client_handler"),
		noun:      "Client",
		store:     clients,
		present:   plain(resource.NewClient),
		newCreate: func() request.Creator[*domain.Client] { return &request.CreateClientRequest{} },
		newUpdate: func() request.Updater[*domain.Client] { return &request.UpdateClientRequest{} },
	}}
}

// Routes registers the client routes.
func (h *ClientHandler) Routes(r chi.Router) {
	r.Route("/clients", h.mount)
}
