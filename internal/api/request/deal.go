package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateDealRequest opens a deal in a pipeline stage.
type CreateDealRequest struct {
	Name              string          `json:"name"                validate:"required,max=191"`
	Description       string          `json:"description"         validate:"max=10000"`
	ClientID          *int64          `json:"client_id"           validate:"omitempty,gt=0"`
	LeadID            *int64          `json:"lead_id"             validate:"omitempty,gt=0"`
	StageID           int64           `json:"stage_id"            validate:"required,gt=0"`
	Amount            decimal.Decimal `json:"amount"              validate:"gte=0"`
	Currency          string          `json:"currency"            validate:"omitempty,len=3,alpha"`
	ExpectedCloseDate string          `json:"expected_close_date" validate:"omitempty,date"`
	OwnerID           *int64          `json:"owner_id"            validate:"omitempty,gt=0"`
}

// Prepare implements Preparer.
func (r *CreateDealRequest) Prepare(s *Sanitizer) {
	r.Name = s.Text(r.Name)
	r.Description = s.HTML(r.Description)
}

// References implements Referencer.
func (r *CreateDealRequest) References() []Reference {
	return []Reference{
		ref("client_id", "clients", r.ClientID),
		ref("lead_id", "leads", r.LeadID),
		{Field: "stage_id", Table: "pipeline_stages", ID: r.StageID},
		ref("owner_id", "staff", r.OwnerID),
	}
}

// New builds the deal, owned by actor unless an owner was given.
func (r *CreateDealRequest) New(actor int64, _ time.Time) (*domain.Deal, error) {
	d := &domain.Deal{
		Name:              r.Name,
		Description:       r.Description,
		ClientID:          optionalID(r.ClientID),
		LeadID:            optionalID(r.LeadID),
		StageID:           r.StageID,
		Amount:            r.Amount.Round(2),
		Currency:          r.Currency,
		Status:            domain.DealOpen,
		ExpectedCloseDate: datePtr(&r.ExpectedCloseDate),
		OwnerID:           optionalID(r.OwnerID),
	}
	if d.OwnerID == nil {
		d.OwnerID = &actor
	}
	return d, nil
}

// UpdateDealRequest changes the fields it carries. Moving stages goes
// through the same open-deal rule as the move action.
type UpdateDealRequest struct {
	Name              *string          `json:"name"                validate:"omitnil,notblank,max=191"`
	Description       *string          `json:"description"         validate:"omitnil,max=10000"`
	ClientID          *int64           `json:"client_id"           validate:"omitnil,gte=0"`
	LeadID            *int64           `json:"lead_id"             validate:"omitnil,gte=0"`
	StageID           *int64           `json:"stage_id"            validate:"omitnil,gt=0"`
	Amount            *decimal.Decimal `json:"amount"              validate:"omitnil,gte=0"`
	Currency          *string          `json:"currency"            validate:"omitnil,optional_currency"`
	ExpectedCloseDate *string          `json:"expected_close_date" validate:"omitnil,optional_date"`
	OwnerID           *int64           `json:"owner_id"            validate:"omitnil,gte=0"`
}

// Prepare implements Preparer.
func (r *UpdateDealRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Name)
	s.HTMLPtr(r.Description)
}

// References implements Referencer.
func (r *UpdateDealRequest) References() []Reference {
	return []Reference{
		ref("client_id", "clients", r.ClientID),
		ref("lead_id", "leads", r.LeadID),
		ref("stage_id", "pipeline_stages", r.StageID),
		ref("owner_id", "staff", r.OwnerID),
	}
}

// Apply implements Updater.
func (r *UpdateDealRequest) Apply(d *domain.Deal, _ time.Time) error {
	if r.StageID != nil && *r.StageID != d.StageID {
		if err := d.MoveToStage(*r.StageID); err != nil {
			return err
		}
	}
	set(&d.Name, r.Name)
	set(&d.Description, r.Description)
	setID(&d.ClientID, r.ClientID)
	setID(&d.LeadID, r.LeadID)
	if r.Amount != nil {
		d.Amount = r.Amount.Round(2)
	}
	set(&d.Currency, r.Currency)
	setDate(&d.ExpectedCloseDate, r.ExpectedCloseDate)
	setID(&d.OwnerID, r.OwnerID)
	return nil
}

// MoveDealRequest moves a deal to another stage.
type MoveDealRequest struct {
	StageID int64 `json:"stage_id" validate:"required,gt=0"`
}

// References implements Referencer.
func (r *MoveDealRequest) References() []Reference {
	return []Reference{{Field: "stage_id", Table: "pipeline_stages", ID: r.StageID}}
}

// LoseDealRequest closes a deal as lost.
type LoseDealRequest struct {
	Reason string `json:"lost_reason" validate:"max=1000"`
}

// Prepare implements Preparer.
func (r *LoseDealRequest) Prepare(s *Sanitizer) {
	r.Reason = s.Text(r.Reason)
}

// Apply closes d as lost at now.
func (r *LoseDealRequest) Apply(d *domain.Deal, now time.Time) error {
	return d.MarkLost(r.Reason, now)
}
