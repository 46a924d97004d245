package api

import (
	"errors"
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

// DealHandler serves /deals. Deals are returned with their pipeline stage
// and weighted amount.
type DealHandler struct {
	*crud[*domain.Deal, resource.DealResource]
	stages store.PipelineStageStore
}

// NewDealHandler creates a DealHandler.
func NewDealHandler(d Deps, deals store.DealStore, stages store.PipelineStageStore) *DealHandler {
	h := &DealHandler{stages: stages}
	h.crud = &crud[*domain.Deal, resource.DealResource]{
		base:        newBase(d, "deal_handler"),
		noun:        "Deal",
		store:       deals,
		present:     h.presentDeal,
		presentList: h.presentDeals,
		newCreate:   func() request.Creator[*domain.Deal] { return &request.CreateDealRequest{} },
		newUpdate:   func() request.Updater[*domain.Deal] { return &request.UpdateDealRequest{} },
	}
	return h
}

// Routes registers the deal routes.
func (h *DealHandler) Routes(r chi.Router) {
	r.Route("/deals", func(r chi.Router) {
		h.mount(r)
		r.Post("/{id}/move-to-stage", actionWith(h.crud, "Deal moved successfully.",
			func(body *request.MoveDealRequest, d *domain.Deal, _ time.Time) error {
				return d.MoveToStage(body.StageID)
			}))
		r.Post("/{id}/won", h.action("Deal marked as won.", (*domain.Deal).MarkWon))
		r.Post("/{id}/lost", actionWith(h.crud, "Deal marked as lost.",
			func(body *request.LoseDealRequest, d *domain.Deal, now time.Time) error {
				return body.Apply(d, now)
			}))
	})
}

func (h *DealHandler) presentDeal(r *http.Request, d *domain.Deal) (resource.DealResource, error) {
	stage, err := h.stages.Get(r.Context(), d.StageID)
	if errors.Is(err, store.ErrNotFound) {
		return resource.NewDeal(d), nil
	}
	if err != nil {
		return resource.DealResource{}, fmt.Errorf("load stage %d: %w", d.StageID, err)
	}
	return resource.NewDealWithStage(d, stage), nil
}

func (h *DealHandler) presentDeals(r *http.Request, deals []*domain.Deal) ([]resource.DealResource, error) {
	all, err := h.stages.All(r.Context())
	if err != nil {
		return nil, fmt.Errorf("load pipeline stages: %w", err)
	}
	byID := make(map[int64]*domain.PipelineStage, len(all))
	for _, s := range all {
		byID[s.ID] = s
	}
	out := make([]resource.DealResource, len(deals))
	for i, d := range deals {
		out[i] = resource.NewDealWithStage(d, byID[d.StageID])
	}
	return out, nil
}

// ProposalHandler serves /proposals.
type ProposalHandler struct {
	*crud[*domain.Proposal, resource.ProposalResource]
}

// NewProposalHandler creates a ProposalHandler.
func NewProposalHandler(d Deps, proposals store.ProposalStore) *ProposalHandler {
	return &ProposalHandler{crud: &crud[*domain.Proposal, resource.ProposalResource]{
		base:      newBase(d, "proposal_handler"),
		noun:      "Proposal",
		store:     proposals,
		present:   plain(resource.NewProposal),
		newCreate: func() request.Creator[*domain.Proposal] { return &request.CreateProposalRequest{} },
		newUpdate: func() request.Updater[*domain.Proposal] { return &request.UpdateProposalRequest{} },
	}}
}

// Routes registers the proposal routes.
func (h *ProposalHandler) Routes(r chi.Router) {
	r.Route("/proposals", func(r chi.Router) {
		h.mount(r)
		r.Post("/{id}/accept", h.action("Proposal accepted.", (*domain.Proposal).Accept))
		r.Post("/{id}/decline", h.action("Proposal declined.", (*domain.Proposal).Decline))
	})
}

// EstimateHandler serves /estimates. Lists leave out line items; a single
// estimate includes them.
type EstimateHandler struct {
	*crud[*domain.Estimate, resource.EstimateResource]
	estimates store.EstimateStore
	options   store.OptionStore
}

// NewEstimateHandler creates an EstimateHandler. Invoice due dates come
// from the CRM options.
func NewEstimateHandler(d Deps, estimates store.EstimateStore, options store.OptionStore) *EstimateHandler {
	b := newBase(d, "estimate_handler")
	return &EstimateHandler{
		crud: &crud[*domain.Estimate, resource.EstimateResource]{
			base:    b,
			noun:    "Estimate",
			store:   estimates,
			present: clocked(b, resource.NewEstimate),
			presentList: func(_ *http.Request, es []*domain.Estimate) ([]resource.EstimateResource, error) {
				now := b.now()
				return resource.List(es, func(e *domain.Estimate) resource.EstimateResource {
					return resource.NewEstimateSummary(e, now)
				}), nil
			},
			newCreate: func() request.Creator[*domain.Estimate] { return &request.CreateEstimateRequest{} },
			newUpdate: func() request.Updater[*domain.Estimate] { return &request.UpdateEstimateRequest{} },
		},
		estimates: estimates,
		options:   options,
	}
}

// Routes registers the estimate routes.
func (h *EstimateHandler) Routes(r chi.Router) {
	r.Route("/estimates", func(r chi.Router) {
		h.mount(r)
		r.Post("/{id}/approve", h.action("Estimate approved.", func(e *domain.Estimate, _ time.Time) error {
			return e.Approve()
		}))
		r.Post("/{id}/reject", h.action("Estimate rejected.", func(e *domain.Estimate, _ time.Time) error {
			return e.Reject()
		}))
		r.Post("/{id}/convert-to-invoice", h.ConvertToInvoice)
	})
}

// ConvertToInvoice handles POST /estimates/{id}/convert-to-invoice.
func (h *EstimateHandler) ConvertToInvoice(w http.ResponseWriter, r *http.Request) {
	est, ok := h.load(w, r)
	if !ok {
		return
	}
	opts, err := h.options.Get(r.Context(), domain.OptInvoiceDueAfter)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("read invoice options: %w", err))
		return
	}
	now := h.now()
	inv, err := est.ToInvoice(now, domain.InvoiceDueDays(opts))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.estimates.ConvertToInvoice(r.Context(), est, inv); err != nil {
		HandleAPIError(w, r, fmt.Errorf("convert estimate %d: %w", est.ID, err))
		return
	}

	h.log(r).Info("estimate converted to invoice",
		"estimate_id", est.ID,
		"invoice_id", inv.ID)
	shared.RespondWithMessage(w, r, http.StatusCreated, "Estimate converted to invoice successfully.",
		resource.InvoiceConversionResource{
			Estimate: resource.NewEstimate(est, now),
			Invoice:  resource.NewInvoice(inv),
		})
}

// EstimateRequestHandler serves /estimate-requests.
type EstimateRequestHandler struct {
	*crud[*domain.EstimateRequest, resource.EstimateRequestResource]
}

// NewEstimateRequestHandler creates an EstimateRequestHandler.
func NewEstimateRequestHandler(d Deps, requests store.EstimateRequestStore) *EstimateRequestHandler {
	return &EstimateRequestHandler{crud: &crud[*domain.EstimateRequest, resource.EstimateRequestResource]{
		base:    newBase(d, "estimate_request_handler"),
		noun:    "Estimate request",
		store:   requests,
		present: plain(resource.NewEstimateRequest),
		newCreate: func() request.Creator[*domain.EstimateRequest] {
			return &request.CreateEstimateRequestRequest{}
		},
		newUpdate: func() request.Updater[*domain.EstimateRequest] {
			return &request.UpdateEstimateRequestRequest{}
		},
	}}
}

// Routes registers the estimate request routes.
func (h *EstimateRequestHandler) Routes(r chi.Router) {
	r.Route("/estimate-requests", func(r chi.Router) {
		h.mount(r)
		r.Patch("/{id}/status", actionWith(h.crud, "Estimate request status updated successfully.",
			func(body *request.EstimateRequestStatusRequest, e *domain.EstimateRequest, _ time.Time) error {
				e.Status = domain.EstimateRequestStatus(body.Status)
				return nil
			}))
	})
}
