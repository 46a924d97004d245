package resource

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// ProposalResource is a proposal.
type ProposalResource struct {
	ID         int64   `json:"id"`
	Subject    string  `json:"subject"`
	Content    string  `json:"content"`
	Related    Related `json:"related"`
	Total      string  `json:"total"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
	OpenTill   *string `json:"open_till"`
	AssignedTo *int64  `json:"assigned_to"`
	CreatedBy  int64   `json:"created_by"`
	DecidedAt  *string `json:"decided_at"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// NewProposal transforms a proposal.
func NewProposal(p *domain.Proposal) ProposalResource {
	return ProposalResource{
		ID:         p.ID,
		Subject:    p.Subject,
		Content:    p.Content,
		Related:    Related{Type: string(p.Related.Type), ID: p.Related.ID},
		Total:      money(p.Total),
		Currency:   p.Currency,
		Status:     string(p.Status),
		OpenTill:   datePtr(p.OpenTill),
		AssignedTo: p.AssignedTo,
		CreatedBy:  p.CreatedBy,
		DecidedAt:  timestampPtr(p.DecidedAt),
		CreatedAt:  timestamp(p.CreatedAt),
		UpdatedAt:  timestamp(p.UpdatedAt),
	}
}

// LineItemResource is one priced row.
type LineItemResource struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"qty"`
	Rate        string `json:"rate"`
	TaxRate     string `json:"tax_rate"`
	Unit        string `json:"unit"`
	Amount      string `json:"amount"`
	Position    int    `json:"item_order"`
}

func newLineItem(it domain.LineItem) LineItemResource {
	return LineItemResource{
		ID:          it.ID,
		Description: it.Description,
		Quantity:    it.Quantity.String(),
		Rate:        money(it.Rate),
		TaxRate:     money(it.TaxRate),
		Unit:        it.Unit,
		Amount:      money(it.Amount()),
		Position:    it.Position,
	}
}

// EstimateResource is an estimate. Items are omitted in list responses.
type EstimateResource struct {
	ID         int64              `json:"id"`
	Number     string             `json:"number"`
	ClientID   int64              `json:"client_id"`
	DealID     *int64             `json:"deal_id"`
	Date       string             `json:"date"`
	ExpiryDate *string            `json:"expiry_date"`
	IsExpired  bool               `json:"is_expired"`
	Currency   string             `json:"currency"`
	Subtotal   string             `json:"subtotal"`
	Discount   string             `json:"discount"`
	Tax        string             `json:"total_tax"`
	Total      string             `json:"total"`
	Status     string             `json:"status"`
	InvoiceID  *int64             `json:"invoice_id"`
	Notes      string             `json:"clientnote"`
	Terms      string             `json:"terms"`
	CreatedBy  int64              `json:"created_by"`
	Items      []LineItemResource `json:"items,omitempty"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}

// NewEstimate transforms an estimate with its items.
func NewEstimate(e *domain.Estimate, now time.Time) EstimateResource {
	r := NewEstimateSummary(e, now)
	r.Items = List(e.Items, newLineItem)
	return r
}

// NewEstimateSummary transforms an estimate without items.
func NewEstimateSummary(e *domain.Estimate, now time.Time) EstimateResource {
	return EstimateResource{
		ID:         e.ID,
		Number:     e.Number,
		ClientID:   e.ClientID,
		DealID:     e.DealID,
		Date:       date(e.Date),
		ExpiryDate: datePtr(e.ExpiryDate),
		IsExpired:  e.IsExpired(now),
		Currency:   e.Currency,
		Subtotal:   money(e.Subtotal),
		Discount:   money(e.Discount),
		Tax:        money(e.Tax),
		Total:      money(e.Total),
		Status:     string(e.Status),
		InvoiceID:  e.InvoiceID,
		Notes:      e.Notes,
		Terms:      e.Terms,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  timestamp(e.CreatedAt),
		UpdatedAt:  timestamp(e.UpdatedAt),
	}
}

// InvoiceResource is an invoice created from an estimate.
type InvoiceResource struct {
	ID         int64              `json:"id"`
	Number     string             `json:"number"`
	ClientID   int64              `json:"client_id"`
	EstimateID *int64             `json:"estimate_id"`
	Date       string             `json:"date"`
	DueDate    *string            `json:"duedate"`
	Currency   string             `json:"currency"`
	Subtotal   string             `json:"subtotal"`
	Discount   string             `json:"discount"`
	Tax        string             `json:"total_tax"`
	Total      string             `json:"total"`
	Status     string             `json:"status"`
	Items      []LineItemResource `json:"items"`
	CreatedAt  string             `json:"created_at"`
}

// NewInvoice transforms an invoice.
func NewInvoice(inv *domain.Invoice) InvoiceResource {
	return InvoiceResource{
		ID:         inv.ID,
		Number:     inv.Number,
		ClientID:   inv.ClientID,
		EstimateID: inv.EstimateID,
		Date:       date(inv.Date),
		DueDate:    datePtr(inv.DueDate),
		Currency:   inv.Currency,
		Subtotal:   money(inv.Subtotal),
		Discount:   money(inv.Discount),
		Tax:        money(inv.Tax),
		Total:      money(inv.Total),
		Status:     string(inv.Status),
		Items:      List(inv.Items, newLineItem),
		CreatedAt:  timestamp(inv.CreatedAt),
	}
}

// InvoiceConversionResource is the result of converting an estimate.
type InvoiceConversionResource struct {
	Estimate EstimateResource `json:"estimate"`
	Invoice  InvoiceResource  `json:"invoice"`
}

// EstimateRequestResource is an inbound quote request.
type EstimateRequestResource struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ClientID   *int64 `json:"client_id"`
	AssignedTo *int64 `json:"assigned_to"`
	Status     string `json:"status"`
	Submission string `json:"submission"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// NewEstimateRequest transforms an estimate request.
func NewEstimateRequest(e *domain.EstimateRequest) EstimateRequestResource {
	return EstimateRequestResource{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		ClientID:   e.ClientID,
		AssignedTo: e.AssignedTo,
		Status:     string(e.Status),
		Submission: e.Submission,
		CreatedAt:  timestamp(e.CreatedAt),
		UpdatedAt:  timestamp(e.UpdatedAt),
	}
}
