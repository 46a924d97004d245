package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateProposalRequest drafts a proposal for a lead or a client.
type CreateProposalRequest struct {
	Subject    string          `json:"subject"     validate:"required,max=191"`
	Content    string          `json:"content"     validate:"max=65535"`
	ModelType  string          `json:"model_type"  validate:"required,proposal_model_type"`
	ModelID    int64           `json:"model_id"    validate:"required,gt=0"`
	Total      decimal.Decimal `json:"total"       validate:"gte=0"`
	Currency   string          `json:"currency"    validate:"omitempty,len=3,alpha"`
	Status     string          `json:"status"      validate:"omitempty,oneof=draft sent open revised"`
	OpenTill   string          `json:"open_till"   validate:"omitempty,date"`
	AssignedTo *int64          `json:"assigned_to" validate:"omitempty,gt=0"`
}

// Prepare implements Preparer.
func (r *CreateProposalRequest) Prepare(s *Sanitizer) {
	r.Subject = s.Text(r.Subject)
	r.Content = s.HTML(r.Content)
	if r.Status == "" {
		r.Status = string(domain.ProposalDraft)
	}
}

// References implements Referencer.
func (r *CreateProposalRequest) References() []Reference {
	return []Reference{modelRef(r.ModelType, r.ModelID), ref("assigned_to", "staff", r.AssignedTo)}
}

// New builds the proposal.
func (r *CreateProposalRequest) New(actor int64, _ time.Time) (*domain.Proposal, error) {
	return &domain.Proposal{
		Subject:    r.Subject,
		Content:    r.Content,
		Related:    domain.ModelRef{Type: domain.ModelType(r.ModelType), ID: r.ModelID},
		Total:      r.Total.Round(2),
		Currency:   r.Currency,
		Status:     domain.ProposalStatus(r.Status),
		OpenTill:   datePtr(&r.OpenTill),
		AssignedTo: optionalID(r.AssignedTo),
		CreatedBy:  actor,
	}, nil
}

// UpdateProposalRequest changes the fields it carries. Accepting and
// declining have their own actions.
type UpdateProposalRequest struct {
	Subject    *string          `json:"subject"     validate:"omitnil,notblank,max=191"`
	Content    *string          `json:"content"     validate:"omitnil,max=65535"`
	ModelType  *string          `json:"model_type"  validate:"omitnil,proposal_model_type"`
	ModelID    *int64           `json:"model_id"    validate:"omitnil,gt=0"`
	Total      *decimal.Decimal `json:"total"       validate:"omitnil,gte=0"`
	Currency   *string          `json:"currency"    validate:"omitnil,optional_currency"`
	Status     *string          `json:"status"      validate:"omitnil,oneof=draft sent open revised"`
	OpenTill   *string          `json:"open_till"   validate:"omitnil,optional_date"`
	AssignedTo *int64           `json:"assigned_to" validate:"omitnil,gte=0"`
}

// Prepare implements Preparer.
func (r *UpdateProposalRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Subject)
	s.HTMLPtr(r.Content)
}

// Check implements Checker.
func (r *UpdateProposalRequest) Check() map[string]string {
	if (r.ModelType == nil) != (r.ModelID == nil) {
		return map[string]string{"model_type": "The model type and model id fields must be sent together."}
	}
	return nil
}

// References implements Referencer.
func (r *UpdateProposalRequest) References() []Reference {
	return []Reference{modelRef(deref(r.ModelType), deref(r.ModelID)), ref("assigned_to", "staff", r.AssignedTo)}
}

// Apply implements Updater.
func (r *UpdateProposalRequest) Apply(p *domain.Proposal, _ time.Time) error {
	if r.Status != nil && (p.Status == domain.ProposalAccepted || p.Status == domain.ProposalDeclined) {
		return domain.NewStateError("status", "The proposal has already been %s.", p.Status)
	}
	set(&p.Subject, r.Subject)
	set(&p.Content, r.Content)
	if r.ModelType != nil && r.ModelID != nil {
		p.Related = domain.ModelRef{Type: domain.ModelType(*r.ModelType), ID: *r.ModelID}
	}
	if r.Total != nil {
		p.Total = r.Total.Round(2)
	}
	set(&p.Currency, r.Currency)
	setAs(&p.Status, r.Status)
	setDate(&p.OpenTill, r.OpenTill)
	setID(&p.AssignedTo, r.AssignedTo)
	return nil
}
