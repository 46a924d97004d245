package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateClientRequest creates a client.
type CreateClientRequest struct {
	Company  string `json:"company"  validate:"required,max=191"`
	VAT      string `json:"vat"      validate:"max=50"`
	Phone    string `json:"phone"    validate:"max=50"`
	Website  string `json:"website"  validate:"omitempty,url,max=255"`
	Address  string `json:"address"  validate:"max=500"`
	City     string `json:"city"     validate:"max=100"`
	State    string `json:"state"    validate:"max=100"`
	Zip      string `json:"zip"      validate:"max=20"`
	Country  string `json:"country"  validate:"max=100"`
	Currency string `json:"currency" validate:"omitempty,len=3,alpha"`
	Active   *bool  `json:"active"`
}

// Prepare implements Preparer.
func (r *CreateClientRequest) Prepare(s *Sanitizer) {
	for _, f := range []*string{&r.Company, &r.VAT, &r.Phone, &r.Address, &r.City, &r.State, &r.Zip, &r.Country} {
		*f = s.Text(*f)
	}
}

// New builds the client.
func (r *CreateClientRequest) New(int64, time.Time) (*domain.Client, error) {
	active := true
	set(&active, r.Active)
	return &domain.Client{
		Company: r.Company, VAT: r.VAT, Phone: r.Phone, Website: r.Website,
		Address: r.Address, City: r.City, State: r.State, Zip: r.Zip,
		Country: r.Country, Currency: r.Currency, Active: active,
	}, nil
}

// UpdateClientRequest changes the fields it carries.
type UpdateClientRequest struct {
	Company  *string `json:"company"  validate:"omitnil,notblank,max=191"`
	VAT      *string `json:"vat"      validate:"omitnil,max=50"`
	Phone    *string `json:"phone"    validate:"omitnil,max=50"`
	Website  *string `json:"website"  validate:"omitnil,optional_url,max=255"`
	Address  *string `json:"address"  validate:"omitnil,max=500"`
	City     *string `json:"city"     validate:"omitnil,max=100"`
	State    *string `json:"state"    validate:"omitnil,max=100"`
	Zip      *string `json:"zip"      validate:"omitnil,max=20"`
	Country  *string `json:"country"  validate:"omitnil,max=100"`
	Currency *string `json:"currency" validate:"omitnil,optional_currency"`
	Active   *bool   `json:"active"`
}

// Prepare implements Preparer.
func (r *UpdateClientRequest) Prepare(s *Sanitizer) {
	for _, f := range []*string{r.Company, r.VAT, r.Phone, r.Address, r.City, r.State, r.Zip, r.Country} {
		s.TextPtr(f)
	}
}

// Apply implements Updater.
func (r *UpdateClientRequest) Apply(c *domain.Client, _ time.Time) error {
	set(&c.Company, r.Company)
	set(&c.VAT, r.VAT)
	set(&c.Phone, r.Phone)
	set(&c.Website, r.Website)
	set(&c.Address, r.Address)
	set(&c.City, r.City)
	set(&c.State, r.State)
	set(&c.Zip, r.Zip)
	set(&c.Country, r.Country)
	set(&c.Currency, r.Currency)
	set(&c.Active, r.Active)
	return nil
}
