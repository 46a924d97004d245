package domain

import (
	"strconv"
	"strings"
)

// BusinessInfo is the company profile kept in the CRM options table.
type BusinessInfo struct {
	CompanyName string
	Address     string
	City        string
	State       string
	Zip         string
	Country     string
	Phone       string
	Email       string
	Website     string
	VAT         string
	Currency    string
	Timezone    string
	DateFormat  string
	LogoURL     string
}

// Option keys backing BusinessInfo.
const (
	OptCompanyName = "company_name"
	OptAddress     = "company_address"
	OptCity        = "company_city"
	OptState       = "company_state"
	OptZip         = "company_zip"
	OptCountry     = "company_country"
	OptPhone       = "company_phone"
	OptEmail       = "company_email"
	OptWebsite     = "company_website"
	OptVAT         = "company_vat"
	OptCurrency    = "default_currency"
	OptTimezone    = "default_timezone"
	OptDateFormat  = "date_format"
	OptLogoURL     = "company_logo_url"

	// OptInvoiceDueAfter is the number of days an invoice is due after
	// its date.
	OptInvoiceDueAfter = "invoice_due_after"
)

// DefaultInvoiceDueDays applies when OptInvoiceDueAfter is unset or not a
// number.
const DefaultInvoiceDueDays = 30

// BusinessInfoKeys are the option keys BusinessInfoFromOptions reads.
var BusinessInfoKeys = []string{
	OptCompanyName, OptAddress, OptCity, OptState, OptZip, OptCountry,
	OptPhone, OptEmail, OptWebsite, OptVAT, OptCurrency, OptTimezone,
	OptDateFormat, OptLogoURL,
}

// InvoiceDueDays reads OptInvoiceDueAfter. Zero is a valid setting and
// means invoices carry no due date.
func InvoiceDueDays(opts map[string]string) int {
	n, err := strconv.Atoi(strings.TrimSpace(opts[OptInvoiceDueAfter]))
	if err != nil || n < 0 {
		return DefaultInvoiceDueDays
	}
	return n
}

// PublicOptions are the option keys the mobile app may read. Everything
// else in the options table is CRM-internal.
var PublicOptions = []string{
	OptCompanyName, OptCurrency, OptTimezone, OptDateFormat,
	"time_format", "week_start", "decimal_separator", "thousand_separator",
	"tasks_kanban_limit", "allow_staff_chat", "reminder_default_minutes",
}

// BusinessInfoFromOptions fills BusinessInfo from option key/values.
// Missing keys fall back to sensible defaults for formatting options.
func BusinessInfoFromOptions(opts map[string]string) BusinessInfo {
	get := func(k, def string) string {
		if v, ok := opts[k]; ok && v != "" {
			return v
		}
		return def
	}
	return BusinessInfo{
		CompanyName: get(OptCompanyName, ""),
		Address:     get(OptAddress, ""),
		City:        get(OptCity, ""),
		State:       get(OptState, ""),
		Zip:         get(OptZip, ""),
		Country:     get(OptCountry, ""),
		Phone:       get(OptPhone, ""),
		Email:       get(OptEmail, ""),
		Website:     get(OptWebsite, ""),
		VAT:         get(OptVAT, ""),
		Currency:    get(OptCurrency, "USD"),
		Timezone:    get(OptTimezone, "UTC"),
		DateFormat:  get(OptDateFormat, "Y-m-d"),
		LogoURL:     get(OptLogoURL, ""),
	}
}
