package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadStatus is a step in the lead funnel.
type LeadStatus string

// Lead statuses.
const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadProposal  LeadStatus = "proposal"
	LeadLost      LeadStatus = "lost"
	LeadConverted LeadStatus = "converted"
)

// Lead is a prospective client.
type Lead struct {
	Model
	Name          string
	Company       string
	Title         string
	Email         string
	Phone         string
	Website       string
	Address       string
	City          string
	Country       string
	Source        string
	Status        LeadStatus
	Value         decimal.Decimal
	Description   string
	AssignedTo    *int64
	ClientID      *int64
	LastContactAt *time.Time
	ConvertedAt   *time.Time
}

// Converted reports whether the lead already became a client.
func (l *Lead) Converted() bool {
	return l.Status == LeadConverted || l.ClientID != nil
}

// SetStatus moves the lead to status. Converted leads are final, and the
// converted status can only be reached through Convert.
func (l *Lead) SetStatus(status LeadStatus) error {
	if l.Converted() {
		return NewStateError("status", "The lead has already been converted.")
	}
	if status == LeadConverted {
		return NewStateError("status", "Use the convert action to convert a lead.")
	}
	l.Status = status
	return nil
}

// ToClient builds the client record a conversion creates. Fields already
// set on overrides win over the lead's own values.
func (l *Lead) ToClient(overrides Client) (*Client, error) {
	if l.Converted() {
		return nil, NewStateError("status", "The lead has already been converted.")
	}
	c := overrides
	c.Model = Model{}
	if c.Company == "" {
		c.Company = l.Company
	}
	if c.Company == "" {
		c.Company = l.Name
	}
	if c.Phone == "" {
		c.Phone = l.Phone
	}
	if c.Website == "" {
		c.Website = l.Website
	}
	if c.Address == "" {
		c.Address = l.Address
	}
	if c.City == "" {
		c.City = l.City
	}
	if c.Country == "" {
		c.Country = l.Country
	}
	c.Active = true
	leadID := l.ID
	c.LeadID = &leadID
	return &c, nil
}

// MarkConverted links the lead to the client created from it.
func (l *Lead) MarkConverted(clientID int64, now time.Time) {
	l.Status = LeadConverted
	l.ClientID = &clientID
	l.ConvertedAt = &now
}
