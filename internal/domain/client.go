package domain

// Client is a customer company.
type Client struct {
	Model
	Company  string
	VAT      string
	Phone    string
	Website  string
	Address  string
	City     string
	State    string
	Zip      string
	Country  string
	Currency string
	Active   bool
	LeadID   *int64
}
