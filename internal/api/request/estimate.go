package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// LineItemRequest is one priced row.
type LineItemRequest struct {
	Description string          `json:"description" validate:"required,max=1000"`
	Quantity    decimal.Decimal `json:"qty"         validate:"gt=0"`
	Rate        decimal.Decimal `json:"rate"        validate:"gte=0"`
	TaxRate     decimal.Decimal `json:"tax_rate"    validate:"gte=0,lte=100"`
	Unit        string          `json:"unit"        validate:"max=40"`
}

func lineItems(in []LineItemRequest, s *Sanitizer) []domain.LineItem {
	out := make([]domain.LineItem, len(in))
	for i, it := range in {
		out[i] = domain.LineItem{
			Description: s.Text(it.Description),
			Quantity:    it.Quantity,
			Rate:        it.Rate.Round(2),
			TaxRate:     it.TaxRate,
			Unit:        s.Text(it.Unit),
			Position:    i + 1,
		}
	}
	return out
}

// CreateEstimateRequest creates an estimate with its items. Totals are
// always computed, never accepted from the client.
type CreateEstimateRequest struct {
	Number     string            `json:"number"      validate:"max=50"`
	ClientID   int64             `json:"client_id"   validate:"required,gt=0"`
	DealID     *int64            `json:"deal_id"     validate:"omitempty,gt=0"`
	Date       string            `json:"date"        validate:"required,date"`
	ExpiryDate string            `json:"expiry_date" validate:"omitempty,date"`
	Currency   string            `json:"currency"    validate:"omitempty,len=3,alpha"`
	Discount   decimal.Decimal   `json:"discount"    validate:"gte=0"`
	Status     string            `json:"status"      validate:"omitempty,oneof=draft sent"`
	Notes      string            `json:"clientnote"  validate:"max=10000"`
	Terms      string            `json:"terms"       validate:"max=10000"`
	Items      []LineItemRequest `json:"items"       validate:"required,min=1,max=200,dive"`

	items []domain.LineItem
}

// Prepare implements Preparer.
func (r *CreateEstimateRequest) Prepare(s *Sanitizer) {
	r.Number = s.Text(r.Number)
	r.Notes = s.HTML(r.Notes)
	r.Terms = s.HTML(r.Terms)
	if r.Status == "" {
		r.Status = string(domain.EstimateDraft)
	}
	r.items = lineItems(r.Items, s)
}

// Check implements Checker.
func (r *CreateEstimateRequest) Check() map[string]string {
	return checkDateOrder(r.Date, r.ExpiryDate, "expiry_date", "The expiry date must be a date after or equal to date.")
}

// References implements Referencer.
func (r *CreateEstimateRequest) References() []Reference {
	return []Reference{
		{Field: "client_id", Table: "clients", ID: r.ClientID},
		ref("deal_id", "deals", r.DealID),
	}
}

// New builds the estimate and its totals.
func (r *CreateEstimateRequest) New(actor int64, _ time.Time) (*domain.Estimate, error) {
	e := &domain.Estimate{
		Number:     r.Number,
		ClientID:   r.ClientID,
		DealID:     optionalID(r.DealID),
		Date:       date(r.Date),
		ExpiryDate: datePtr(&r.ExpiryDate),
		Currency:   r.Currency,
		Items:      r.items,
		Status:     domain.EstimateStatus(r.Status),
		Notes:      r.Notes,
		Terms:      r.Terms,
		CreatedBy:  actor,
	}
	e.Discount = r.Discount
	e.Recalculate()
	return e, nil
}

// UpdateEstimateRequest changes the fields it carries. Sending items
// replaces all of them.
type UpdateEstimateRequest struct {
	Number     *string           `json:"number"      validate:"omitnil,max=50"`
	ClientID   *int64            `json:"client_id"   validate:"omitnil,gt=0"`
	DealID     *int64            `json:"deal_id"     validate:"omitnil,gte=0"`
	Date       *string           `json:"date"        validate:"omitnil,date"`
	ExpiryDate *string           `json:"expiry_date" validate:"omitnil,optional_date"`
	Currency   *string           `json:"currency"    validate:"omitnil,optional_currency"`
	Discount   *decimal.Decimal  `json:"discount"    validate:"omitnil,gte=0"`
	Status     *string           `json:"status"      validate:"omitnil,oneof=draft sent"`
	Notes      *string           `json:"clientnote"  validate:"omitnil,max=10000"`
	Terms      *string           `json:"terms"       validate:"omitnil,max=10000"`
	Items      []LineItemRequest `json:"items"       validate:"omitnil,min=1,max=200,dive"`

	items []domain.LineItem
}

// Prepare implements Preparer.
func (r *UpdateEstimateRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Number)
	s.HTMLPtr(r.Notes)
	s.HTMLPtr(r.Terms)
	if r.Items != nil {
		r.items = lineItems(r.Items, s)
	}
}

// References implements Referencer.
func (r *UpdateEstimateRequest) References() []Reference {
	return []Reference{ref("client_id", "clients", r.ClientID), ref("deal_id", "deals", r.DealID)}
}

// Apply implements Updater.
func (r *UpdateEstimateRequest) Apply(e *domain.Estimate, _ time.Time) error {
	if e.Status == domain.EstimateInvoiced {
		return domain.NewStateError("status", "An invoiced estimate cannot be changed.")
	}
	set(&e.Number, r.Number)
	set(&e.ClientID, r.ClientID)
	setID(&e.DealID, r.DealID)
	if r.Date != nil {
		e.Date = date(*r.Date)
	}
	setDate(&e.ExpiryDate, r.ExpiryDate)
	if e.ExpiryDate != nil && e.ExpiryDate.Before(e.Date) {
		return domain.NewStateError("expiry_date", "The expiry date must be a date after or equal to date.")
	}
	set(&e.Currency, r.Currency)
	set(&e.Discount, r.Discount)
	setAs(&e.Status, r.Status)
	set(&e.Notes, r.Notes)
	set(&e.Terms, r.Terms)
	if r.items != nil {
		e.Items = r.items
	}
	e.Recalculate()
	return nil
}

// CreateEstimateRequestRequest records an inbound quote request.
type CreateEstimateRequestRequest struct {
	Name       string `json:"name"        validate:"max=191"`
	Email      string `json:"email"       validate:"required,email,max=191"`
	Phone      string `json:"phone"       validate:"max=50"`
	ClientID   *int64 `json:"client_id"   validate:"omitempty,gt=0"`
	AssignedTo *int64 `json:"assigned_to" validate:"omitempty,gt=0"`
	Submission string `json:"submission"  validate:"max=65535"`
}

// Prepare implements Preparer.
func (r *CreateEstimateRequestRequest) Prepare(s *Sanitizer) {
	r.Name = s.Text(r.Name)
	r.Phone = s.Text(r.Phone)
	r.Submission = s.HTML(r.Submission)
}

// References implements Referencer.
func (r *CreateEstimateRequestRequest) References() []Reference {
	return []Reference{ref("client_id", "clients", r.ClientID), ref("assigned_to", "staff", r.AssignedTo)}
}

// New builds a pending estimate request.
func (r *CreateEstimateRequestRequest) New(int64, time.Time) (*domain.EstimateRequest, error) {
	return &domain.EstimateRequest{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		ClientID:   optionalID(r.ClientID),
		AssignedTo: optionalID(r.AssignedTo),
		Status:     domain.EstimateRequestPending,
		Submission: r.Submission,
	}, nil
}

// UpdateEstimateRequestRequest changes the fields it carries.
type UpdateEstimateRequestRequest struct {
	Name       *string `json:"name"        validate:"omitnil,max=191"`
	Email      *string `json:"email"       validate:"omitnil,notblank,email,max=191"`
	Phone      *string `json:"phone"       validate:"omitnil,max=50"`
	ClientID   *int64  `json:"client_id"   validate:"omitnil,gte=0"`
	AssignedTo *int64  `json:"assigned_to" validate:"omitnil,gte=0"`
	Status     *string `json:"status"      validate:"omitnil,oneof=pending processing completed cancelled"`
	Submission *string `json:"submission"  validate:"omitnil,max=65535"`
}

// Prepare implements Preparer.
func (r *UpdateEstimateRequestRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Name)
	s.TextPtr(r.Phone)
	s.HTMLPtr(r.Submission)
}

// References implements Referencer.
func (r *UpdateEstimateRequestRequest) References() []Reference {
	return []Reference{ref("client_id", "clients", r.ClientID), ref("assigned_to", "staff", r.AssignedTo)}
}

// Apply implements Updater.
func (r *UpdateEstimateRequestRequest) Apply(e *domain.EstimateRequest, _ time.Time) error {
	set(&e.Name, r.Name)
	set(&e.Email, r.Email)
	set(&e.Phone, r.Phone)
	setID(&e.ClientID, r.ClientID)
	setID(&e.AssignedTo, r.AssignedTo)
	setAs(&e.Status, r.Status)
	set(&e.Submission, r.Submission)
	return nil
}

// EstimateRequestStatusRequest changes only the handling status.
type EstimateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}
