package resource

import "github.com/phrazzld/crm-mobile-api/internal/domain"

// PipelineStageResource is a pipeline board column.
type PipelineStageResource struct {
	ID             int64  `json:"id"`
	PipelineID     int64  `json:"pipeline_id"`
	Name           string `json:"name"`
	Position       int    `json:"position"`
	WinProbability int    `json:"win_probability"`
}

// NewPipelineStage transforms a stage.
func NewPipelineStage(s *domain.PipelineStage) PipelineStageResource {
	return PipelineStageResource{
		ID:             s.ID,
		PipelineID:     s.PipelineID,
		Name:           s.Name,
		Position:       s.Position,
		WinProbability: s.WinProbability,
	}
}

// DealResource is a deal. Stage and WeightedAmount are present only when
// the deal's stage was loaded.
type DealResource struct {
	ID                int64                  `json:"id"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	ClientID          *int64                 `json:"client_id"`
	LeadID            *int64                 `json:"lead_id"`
	StageID           int64                  `json:"stage_id"`
	Stage             *PipelineStageResource `json:"stage,omitempty"`
	Amount            string                 `json:"amount"`
	WeightedAmount    *string                `json:"weighted_amount,omitempty"`
	Currency          string                 `json:"currency"`
	Status            string                 `json:"status"`
	ExpectedCloseDate *string                `json:"expected_close_date"`
	OwnerID           *int64                 `json:"owner_id"`
	LostReason        string                 `json:"lost_reason"`
	ClosedAt          *string                `json:"closed_at"`
	CreatedAt         string                 `json:"created_at"`
	UpdatedAt         string                 `json:"updated_at"`
}

// NewDeal transforms a deal.
func NewDeal(d *domain.Deal) DealResource {
	return DealResource{
		ID:                d.ID,
		Name:              d.Name,
		Description:       d.Description,
		ClientID:          d.ClientID,
		LeadID:            d.LeadID,
		StageID:           d.StageID,
		Amount:            money(d.Amount),
		Currency:          d.Currency,
		Status:            string(d.Status),
		ExpectedCloseDate: datePtr(d.ExpectedCloseDate),
		OwnerID:           d.OwnerID,
		LostReason:        d.LostReason,
		ClosedAt:          timestampPtr(d.ClosedAt),
		CreatedAt:         timestamp(d.CreatedAt),
		UpdatedAt:         timestamp(d.UpdatedAt),
	}
}

// NewDealWithStage transforms a deal and embeds its stage.
func NewDealWithStage(d *domain.Deal, stage *domain.PipelineStage) DealResource {
	r := NewDeal(d)
	if stage != nil {
		s := NewPipelineStage(stage)
		w := money(d.WeightedAmount(stage))
		r.Stage = &s
		r.WeightedAmount = &w
	}
	return r
}
