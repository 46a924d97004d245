package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealStatus tracks whether a deal is still in play.
type DealStatus string

// Deal statuses.
const (
	DealOpen DealStatus = "open"
	DealWon  DealStatus = "won"
	DealLost DealStatus = "lost"
)

// PipelineStage is a column on a sales pipeline board.
type PipelineStage struct {
	Model
	PipelineID     int64
	Name           string
	Position       int
	WinProbability int
}

// Deal is a sales opportunity moving through pipeline stages.
type Deal struct {
	Model
	Name              string
	Description       string
	ClientID          *int64
	LeadID            *int64
	StageID           int64
	Amount            decimal.Decimal
	Currency          string
	Status            DealStatus
	ExpectedCloseDate *time.Time
	OwnerID           *int64
	LostReason        string
	ClosedAt          *time.Time
}

// WeightedAmount is the amount scaled by the stage's win probability.
func (d *Deal) WeightedAmount(stage *PipelineStage) decimal.Decimal {
	if stage == nil {
		return decimal.Zero
	}
	return d.Amount.
		Mul(decimal.NewFromInt(int64(stage.WinProbability))).
		Div(decimal.NewFromInt(100)).
		Round(2)
}

func (d *Deal) requireOpen(field string) error {
	if d.Status != DealOpen {
		return NewStateError(field, "The deal is already %s.", d.Status)
	}
	return nil
}

// MoveToStage places an open deal in another stage.
func (d *Deal) MoveToStage(stageID int64) error {
	if err := d.requireOpen("stage_id"); err != nil {
		return err
	}
	d.StageID = stageID
	return nil
}

// MarkWon closes an open deal as won.
func (d *Deal) MarkWon(now time.Time) error {
	if err := d.requireOpen("status"); err != nil {
		return err
	}
	d.Status = DealWon
	d.LostReason = ""
	d.ClosedAt = &now
	return nil
}

// MarkLost closes an open deal as lost with an optional reason.
func (d *Deal) MarkLost(reason string, now time.Time) error {
	if err := d.requireOpen("status"); err != nil {
		return err
	}
	d.Status = DealLost
	d.LostReason = reason
	d.ClosedAt = &now
	return nil
}
