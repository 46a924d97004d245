package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		items    []LineItem
		discount string
		want     [4]string // subtotal, discount, tax, total
	}{
		{
			name: "no items",
			want: [4]string{"0", "0", "0", "0"},
		},
		{
			name: "single item without tax",
			items: []LineItem{
				{Quantity: dec("2"), Rate: dec("50"), TaxRate: dec("0")},
			},
			want: [4]string{"100", "0", "0", "100"},
		},
		{
			name: "mixed tax rates with discount",
			items: []LineItem{
				{Quantity: dec("3"), Rate: dec("19.99"), TaxRate: dec("10")},
				{Quantity: dec("1.5"), Rate: dec("100"), TaxRate: dec("20")},
			},
			discount: "10",
			// subtotal 59.97 + 150 = 209.97; tax 5.997 + 30 = 35.997 -> 36.00
			want: [4]string{"209.97", "10", "36", "235.97"},
		},
		{
			name: "rounding to two places",
			items: []LineItem{
				{Quantity: dec("1"), Rate: dec("0.333"), TaxRate: dec("0")},
				{Quantity: dec("1"), Rate: dec("0.333"), TaxRate: dec("0")},
			},
			want: [4]string{"0.67", "0", "0", "0.67"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			discount := decimal.Zero
			if tt.discount != "" {
				discount = dec(tt.discount)
			}
			got := CalculateTotals(tt.items, discount)
			assert.True(t, dec(tt.want[0]).Equal(got.Subtotal), "subtotal %s", got.Subtotal)
			assert.True(t, dec(tt.want[1]).Equal(got.Discount), "discount %s", got.Discount)
			assert.True(t, dec(tt.want[2]).Equal(got.Tax), "tax %s", got.Tax)
			assert.True(t, dec(tt.want[3]).Equal(got.Total), "total %s", got.Total)
		})
	}
}

func TestEstimateToInvoice(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 15, 4, 0, 0, time.UTC)
	est := &Estimate{
		Model:    Model{ID: 42},
		Number:   "EST-000042",
		ClientID: 7,
		Currency: "EUR",
		Items: []LineItem{
			{ID: 1, Description: "Design", Quantity: dec("2"), Rate: dec("100"), TaxRate: dec("10")},
		},
		Status: EstimateAccepted,
	}
	est.Totals.Discount = dec("20")

	inv, err := est.ToInvoice(now, 30)
	require.NoError(t, err)

	assert.Equal(t, "INV-000042", inv.Number)
	assert.Equal(t, int64(7), inv.ClientID)
	require.NotNil(t, inv.EstimateID)
	assert.Equal(t, int64(42), *inv.EstimateID)
	assert.Equal(t, InvoiceUnpaid, inv.Status)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), inv.Date)
	require.NotNil(t, inv.DueDate)
	assert.Equal(t, time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC), *inv.DueDate)
	require.Len(t, inv.Items, 1)
	assert.Zero(t, inv.Items[0].ID, "copied items must not keep estimate item ids")
	assert.True(t, dec("200").Equal(inv.Subtotal))
	assert.True(t, dec("200").Equal(inv.Total)) // 200 - 20 + 20

	est.MarkInvoiced(99)
	assert.Equal(t, EstimateInvoiced, est.Status)

	_, err = est.ToInvoice(now, 0)
	var stateErr *StateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, "status", stateErr.Field)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestEstimateToInvoice_Declined(t *testing.T) {
	t.Parallel()

	est := &Estimate{Status: EstimateDeclined}
	_, err := est.ToInvoice(time.Now(), 0)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestInvoiceNumberFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "INV-0001", InvoiceNumberFor("EST-0001", 1))
	assert.Equal(t, "INV-Q-17", InvoiceNumberFor("Q-17", 17))
	assert.Equal(t, "INV-E5", InvoiceNumberFor("", 5))
}

func TestEstimateApproveReject(t *testing.T) {
	t.Parallel()

	est := &Estimate{Status: EstimateSent}
	require.NoError(t, est.Approve())
	assert.Equal(t, EstimateAccepted, est.Status)
	assert.ErrorIs(t, est.Approve(), ErrInvalidState)

	require.NoError(t, est.Reject())
	assert.Equal(t, EstimateDeclined, est.Status)
	assert.ErrorIs(t, est.Reject(), ErrInvalidState)

	est.Status = EstimateInvoiced
	assert.ErrorIs(t, est.Approve(), ErrInvalidState)
	assert.ErrorIs(t, est.Reject(), ErrInvalidState)
}

func TestEstimateIsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	today := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

	assert.False(t, (&Estimate{Status: EstimateSent}).IsExpired(now))
	assert.True(t, (&Estimate{Status: EstimateSent, ExpiryDate: &yesterday}).IsExpired(now))
	assert.False(t, (&Estimate{Status: EstimateSent, ExpiryDate: &today}).IsExpired(now))
	assert.False(t, (&Estimate{Status: EstimateAccepted, ExpiryDate: &yesterday}).IsExpired(now))
}
