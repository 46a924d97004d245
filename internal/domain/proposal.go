package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus is the lifecycle state of a proposal.
type ProposalStatus string

// Proposal statuses.
const (
	ProposalDraft    ProposalStatus = "draft"
	ProposalSent     ProposalStatus = "sent"
	ProposalOpen     ProposalStatus = "open"
	ProposalRevised  ProposalStatus = "revised"
	ProposalDeclined ProposalStatus = "declined"
	ProposalAccepted ProposalStatus = "accepted"
)

// Proposal is a commercial offer addressed to a lead or a client.
type Proposal struct {
	Model
	Subject    string
	Content    string
	Related    ModelRef
	Total      decimal.Decimal
	Currency   string
	Status     ProposalStatus
	OpenTill   *time.Time
	AssignedTo *int64
	CreatedBy  int64
	DecidedAt  *time.Time
}

// ProposalTargets are the model types a proposal may be addressed to.
var ProposalTargets = []ModelType{ModelLead, ModelClient}

func (p *Proposal) decided() bool {
	return p.Status == ProposalAccepted || p.Status == ProposalDeclined
}

// Accept records the recipient's acceptance.
func (p *Proposal) Accept(now time.Time) error {
	if p.decided() {
		return NewStateError("status", "The proposal has already been %s.", p.Status)
	}
	p.Status = ProposalAccepted
	p.DecidedAt = &now
	return nil
}

// Decline records the recipient's rejection.
func (p *Proposal) Decline(now time.Time) error {
	if p.decided() {
		return NewStateError("status", "The proposal has already been %s.", p.Status)
	}
	p.Status = ProposalDeclined
	p.DecidedAt = &now
	return nil
}
