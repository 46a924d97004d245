package resource

import "github.com/phrazzld/crm-mobile-api/internal/domain"

// LeadResource is a lead.
type LeadResource struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Company       string  `json:"company"`
	Title         string  `json:"title"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Website       string  `json:"website"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Source        string  `json:"source"`
	Status        string  `json:"status"`
	Value         string  `json:"lead_value"`
	Description   string  `json:"description"`
	AssignedTo    *int64  `json:"assigned_to"`
	ClientID      *int64  `json:"client_id"`
	IsConverted   bool    `json:"is_converted"`
	LastContactAt *string `json:"last_contact_at"`
	ConvertedAt   *string `json:"converted_at"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// NewLead transforms a lead.
func NewLead(l *domain.Lead) LeadResource {
	return LeadResource{
		ID:            l.ID,
		Name:          l.Name,
		Company:       l.Company,
		Title:         l.Title,
		Email:         l.Email,
		Phone:         l.Phone,
		Website:       l.Website,
		Address:       l.Address,
		City:          l.City,
		Country:       l.Country,
		Source:        l.Source,
		Status:        string(l.Status),
		Value:         money(l.Value),
		Description:   l.Description,
		AssignedTo:    l.AssignedTo,
		ClientID:      l.ClientID,
		IsConverted:   l.Converted(),
		LastContactAt: timestampPtr(l.LastContactAt),
		ConvertedAt:   timestampPtr(l.ConvertedAt),
		CreatedAt:     timestamp(l.CreatedAt),
		UpdatedAt:     timestamp(l.UpdatedAt),
	}
}

// ClientResource is a client company.
type ClientResource struct {
	ID        int64  `json:"id"`
	Company   string `json:"company"`
	VAT       string `json:"vat"`
	Phone     string `json:"phone"`
	Website   string `json:"website"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Currency  string `json:"currency"`
	Active    bool   `json:"active"`
	LeadID    *int64 `json:"lead_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewClient transforms a client.
func NewClient(c *domain.Client) ClientResource {
	return ClientResource{
		ID:        c.ID,
		Company:   c.Company,
		VAT:       c.VAT,
		Phone:     c.Phone,
		Website:   c.Website,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Zip:       c.Zip,
		Country:   c.Country,
		Currency:  c.Currency,
		Active:    c.Active,
		LeadID:    c.LeadID,
		CreatedAt: timestamp(c.CreatedAt),
		UpdatedAt: timestamp(c.UpdatedAt),
	}
}

// ConversionResource is the result of converting a lead.
type ConversionResource struct {
	Lead   LeadResource   `json:"lead"`
	Client ClientResource `json:"client"`
}
