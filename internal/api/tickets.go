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

// TicketHandler serves /tickets and their reply threads.
type TicketHandler struct {
	*crud[*domain.Ticket, resource.TicketResource]
	tickets store.TicketStore
}

// NewTicketHandler creates a TicketHandler.
func NewTicketHandler(d Deps, tickets store.TicketStore) *TicketHandler {
	return &TicketHandler{
		crud: &crud[*domain.Ticket, resource.TicketResource]{
			base:      newBase(d, "ticket_handler"),
			noun:      "Ticket",
			store:     tickets,
			present:   plain(resource.NewTicket),
			newCreate: func() request.Creator[*domain.Ticket] { return &request.CreateTicketRequest{} },
			newUpdate: func() request.Updater[*domain.Ticket] { return &request.UpdateTicketRequest{} },
		},
		tickets: tickets,
	}
}

// Routes registers the ticket routes.
func (h *TicketHandler) Routes(r chi.Router) {
	r.Route("/tickets", func(r chi.Router) {
		h.mount(r)
		r.Get("/{id}/replies", h.Replies)
		r.Post("/{id}/replies", h.Reply)
		r.Patch("/{id}/status", actionWith(h.crud, "Ticket status updated successfully.",
			func(body *request.TicketStatusRequest, t *domain.Ticket, _ time.Time) error {
				t.Status = domain.TicketStatus(body.Status)
				return nil
			}))
	})
}

// Replies handles GET /tickets/{id}/replies, oldest first.
func (h *TicketHandler) Replies(w http.ResponseWriter, r *http.Request) {
	t, ok := h.load(w, r)
	if !ok {
		return
	}
	replies, err := h.tickets.Replies(r.Context(), t.ID)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("list replies of ticket %d: %w", t.ID, err))
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, resource.List(replies, resource.NewTicketReply))
}

// Reply handles POST /tickets/{id}/replies. The ticket moves to answered
// unless the reply names another status.
func (h *TicketHandler) Reply(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	t, ok := h.load(w, r)
	if !ok {
		return
	}
	var req request.TicketReplyRequest
	if !h.bind(w, r, &req) {
		return
	}

	reply := &domain.TicketReply{TicketID: t.ID, StaffID: actor, Message: req.Message}
	t.ApplyReply(domain.TicketStatus(req.Status), h.now())
	if err := h.tickets.AddReply(r.Context(), t, reply); err != nil {
		HandleAPIError(w, r, fmt.Errorf("reply to ticket %d: %w", t.ID, err))
		return
	}
	shared.RespondWithMessage(w, r, http.StatusCreated, "Reply added successfully.", resource.NewTicketReply(reply))
}
