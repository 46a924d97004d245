package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus is the lifecycle state of an estimate.
type EstimateStatus string

// Estimate statuses.
const (
	EstimateDraft    EstimateStatus = "draft"
	EstimateSent     EstimateStatus = "sent"
	EstimateDeclined EstimateStatus = "declined"
	EstimateAccepted EstimateStatus = "accepted"
	EstimateExpired  EstimateStatus = "expired"
	EstimateInvoiced EstimateStatus = "invoiced"
)

var hundred = decimal.NewFromInt(100)

// LineItem is one priced row on an estimate or invoice.
type LineItem struct {
	ID          int64
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	TaxRate     decimal.Decimal
	Unit        string
	Position    int
}

// Amount is quantity times rate.
func (i LineItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Rate)
}

// Tax is the item's amount multiplied by its tax rate percentage.
func (i LineItem) Tax() decimal.Decimal {
	return i.Amount().Mul(i.TaxRate).Div(hundred)
}

// Totals are the derived money columns of an estimate or invoice.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals sums items and applies a flat discount. Every figure is
// rounded to two decimal places.
func CalculateTotals(items []LineItem, discount decimal.Decimal) Totals {
	subtotal, tax := decimal.Zero, decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount())
		tax = tax.Add(it.Tax())
	}
	subtotal = subtotal.Round(2)
	tax = tax.Round(2)
	discount = discount.Round(2)
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal.Sub(discount).Add(tax).Round(2),
	}
}

// Estimate is a priced quote sent to a client.
type Estimate struct {
	Model
	Number     string
	ClientID   int64
	DealID     *int64
	Date       time.Time
	ExpiryDate *time.Time
	Currency   string
	Items      []LineItem
	Totals
	Status    EstimateStatus
	InvoiceID *int64
	Notes     string
	Terms     string
	CreatedBy int64
}

// Recalculate refreshes the totals from the current items and discount.
func (e *Estimate) Recalculate() {
	e.Totals = CalculateTotals(e.Items, e.Discount)
}

// IsExpired reports whether the expiry date has passed for an estimate that
// was never decided.
func (e *Estimate) IsExpired(now time.Time) bool {
	if e.ExpiryDate == nil {
		return false
	}
	switch e.Status {
	case EstimateAccepted, EstimateDeclined, EstimateInvoiced:
		return false
	}
	return truncateDay(*e.ExpiryDate).Before(truncateDay(now))
}

// Approve marks the estimate accepted by the client.
func (e *Estimate) Approve() error {
	switch e.Status {
	case EstimateInvoiced, EstimateAccepted:
		return NewStateError("status", "The estimate is already %s.", e.Status)
	}
	e.Status = EstimateAccepted
	return nil
}

// Reject marks the estimate declined by the client.
func (e *Estimate) Reject() error {
	switch e.Status {
	case EstimateInvoiced, EstimateDeclined:
		return NewStateError("status", "The estimate is already %s.", e.Status)
	}
	e.Status = EstimateDeclined
	return nil
}

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

// Invoice statuses relevant to this API; payment tracking lives in the CRM.
const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoiceDraft  InvoiceStatus = "draft"
)

// Invoice is the billing document produced from an estimate.
type Invoice struct {
	Model
	Number     string
	ClientID   int64
	EstimateID *int64
	Date       time.Time
	DueDate    *time.Time
	Currency   string
	Items      []LineItem
	Totals
	Status InvoiceStatus
}

// ToInvoice builds the invoice an estimate converts into. The invoice
// copies items and totals; dueDays of zero leaves the due date empty.
func (e *Estimate) ToInvoice(now time.Time, dueDays int) (*Invoice, error) {
	switch e.Status {
	case EstimateInvoiced:
		return nil, NewStateError("status", "The estimate has already been converted to an invoice.")
	case EstimateDeclined:
		return nil, NewStateError("status", "A declined estimate cannot be converted to an invoice.")
	}
	date := truncateDay(now)
	inv := &Invoice{
		Number:   InvoiceNumberFor(e.Number, e.ID),
		ClientID: e.ClientID,
		Date:     date,
		Currency: e.Currency,
		Items:    make([]LineItem, len(e.Items)),
		Totals:   CalculateTotals(e.Items, e.Discount),
		Status:   InvoiceUnpaid,
	}
	id := e.ID
	inv.EstimateID = &id
	for i, it := range e.Items {
		it.ID = 0
		inv.Items[i] = it
	}
	if dueDays > 0 {
		due := date.AddDate(0, 0, dueDays)
		inv.DueDate = &due
	}
	return inv, nil
}

// MarkInvoiced links the estimate to the invoice created from it.
func (e *Estimate) MarkInvoiced(invoiceID int64) {
	e.Status = EstimateInvoiced
	e.InvoiceID = &invoiceID
}

// InvoiceNumberFor derives an invoice number from an estimate number,
// falling back to the estimate id for unnumbered estimates.
func InvoiceNumberFor(estimateNumber string, estimateID int64) string {
	if estimateNumber == "" {
		return fmt.Sprintf("INV-E%d", estimateID)
	}
	return fmt.Sprintf("INV-%s", strings.TrimPrefix(estimateNumber, "EST-"))
}
