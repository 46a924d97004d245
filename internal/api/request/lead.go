package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateLeadRequest creates a lead.
type CreateLeadRequest struct {
	Name        string          `json:"name"        validate:"required,max=191"`
	Company     string          `json:"company"     validate:"max=191"`
	Title       string          `json:"title"       validate:"max=100"`
	Email       string          `json:"email"       validate:"omitempty,email,max=191"`
	Phone       string          `json:"phone"       validate:"max=50"`
	Website     string          `json:"website"     validate:"omitempty,url,max=255"`
	Address     string          `json:"address"     validate:"max=500"`
	City        string          `json:"city"        validate:"max=100"`
	Country     string          `json:"country"     validate:"max=100"`
	Source      string          `json:"source"      validate:"max=100"`
	Status      string          `json:"status"      validate:"omitempty,oneof=new contacted qualified proposal lost"`
	Value       decimal.Decimal `json:"value"       validate:"gte=0"`
	Description string          `json:"description" validate:"max=10000"`
	AssignedTo  *int64          `json:"assigned_to" validate:"omitempty,gt=0"`
}

// Prepare implements Preparer.
func (r *CreateLeadRequest) Prepare(s *Sanitizer) {
	for _, f := range []*string{&r.Name, &r.Company, &r.Title, &r.Phone, &r.Address, &r.City, &r.Country, &r.Source} {
		*f = s.Text(*f)
	}
	r.Description = s.HTML(r.Description)
	if r.Status == "" {
		r.Status = string(domain.LeadNew)
	}
}

// References implements Referencer.
func (r *CreateLeadRequest) References() []Reference {
	return []Reference{ref("assigned_to", "staff", r.AssignedTo)}
}

// New builds the lead.
func (r *CreateLeadRequest) New(actor int64, _ time.Time) (*domain.Lead, error) {
	l := &domain.Lead{
		Name: r.Name, Company: r.Company, Title: r.Title, Email: r.Email,
		Phone: r.Phone, Website: r.Website, Address: r.Address, City: r.City,
		Country: r.Country, Source: r.Source, Status: domain.LeadStatus(r.Status),
		Value: r.Value.Round(2), Description: r.Description,
		AssignedTo: optionalID(r.AssignedTo),
	}
	if l.AssignedTo == nil {
		l.AssignedTo = &actor
	}
	return l, nil
}

// UpdateLeadRequest changes the fields it carries.
type UpdateLeadRequest struct {
	Name        *string          `json:"name"        validate:"omitnil,notblank,max=191"`
	Company     *string          `json:"company"     validate:"omitnil,max=191"`
	Title       *string          `json:"title"       validate:"omitnil,max=100"`
	Email       *string          `json:"email"       validate:"omitnil,optional_email,max=191"`
	Phone       *string          `json:"phone"       validate:"omitnil,max=50"`
	Website     *string          `json:"website"     validate:"omitnil,optional_url,max=255"`
	Address     *string          `json:"address"     validate:"omitnil,max=500"`
	City        *string          `json:"city"        validate:"omitnil,max=100"`
	Country     *string          `json:"country"     validate:"omitnil,max=100"`
	Source      *string          `json:"source"      validate:"omitnil,max=100"`
	Status      *string          `json:"status"      validate:"omitnil,oneof=new contacted qualified proposal lost"`
	Value       *decimal.Decimal `json:"value"       validate:"omitnil,gte=0"`
	Description *string          `json:"description" validate:"omitnil,max=10000"`
	AssignedTo  *int64           `json:"assigned_to" validate:"omitnil,gte=0"`
}

// Prepare implements Preparer.
func (r *UpdateLeadRequest) Prepare(s *Sanitizer) {
	for _, f := range []*string{r.Name, r.Company, r.Title, r.Phone, r.Address, r.City, r.Country, r.Source} {
		s.TextPtr(f)
	}
	s.HTMLPtr(r.Description)
}

// References implements Referencer.
func (r *UpdateLeadRequest) References() []Reference {
	return []Reference{ref("assigned_to", "staff", r.AssignedTo)}
}

// Apply implements Updater.
func (r *UpdateLeadRequest) Apply(l *domain.Lead, _ time.Time) error {
	if r.Status != nil && domain.LeadStatus(*r.Status) != l.Status {
		if err := l.SetStatus(domain.LeadStatus(*r.Status)); err != nil {
			return err
		}
	}
	set(&l.Name, r.Name)
	set(&l.Company, r.Company)
	set(&l.Title, r.Title)
	set(&l.Email, r.Email)
	set(&l.Phone, r.Phone)
	set(&l.Website, r.Website)
	set(&l.Address, r.Address)
	set(&l.City, r.City)
	set(&l.Country, r.Country)
	set(&l.Source, r.Source)
	if r.Value != nil {
		l.Value = r.Value.Round(2)
	}
	set(&l.Description, r.Description)
	setID(&l.AssignedTo, r.AssignedTo)
	return nil
}

// LeadStatusRequest moves a lead through the pipeline.
type LeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified proposal lost"`
}

// ConvertLeadRequest overrides client fields when converting a lead.
type ConvertLeadRequest struct {
	Company  string `json:"company"  validate:"max=191"`
	VAT      string `json:"vat"      validate:"max=50"`
	Phone    string `json:"phone"    validate:"max=50"`
	Website  string `json:"website"  validate:"omitempty,url,max=255"`
	Address  string `json:"address"  validate:"max=500"`
	City     string `json:"city"     validate:"max=100"`
	State    string `json:"state"    validate:"max=100"`
	Zip      string `json:"zip"      validate:"max=20"`
	Country  string `json:"country"  validate:"max=100"`
	Currency string `json:"currency" validate:"omitempty,len=3,alpha"`
}

// Prepare implements Preparer.
func (r *ConvertLeadRequest) Prepare(s *Sanitizer) {
	for _, f := range []*string{&r.Company, &r.VAT, &r.Phone, &r.Address, &r.City, &r.State, &r.Zip, &r.Country} {
		*f = s.Text(*f)
	}
}

// Overrides returns the client fields to prefer over the lead's.
func (r *ConvertLeadRequest) Overrides() domain.Client {
	return domain.Client{
		Company: r.Company, VAT: r.VAT, Phone: r.Phone, Website: r.Website,
		Address: r.Address, City: r.City, State: r.State, Zip: r.Zip,
		Country: r.Country, Currency: r.Currency,
	}
}
