package models

import "strings"

// Customer represents a customer in the system
type Customer struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name" validate:"required,min=2"`
	LastName    string `json:"last_name" validate:"required,min=2"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
}

// Normalize trims surrounding whitespace from all text fields
func (c *Customer) Normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
}

// CustomerDetail is a customer together with every address it owns
type CustomerDetail struct {
	Customer
	Addresses []*Address `json:"addresses"`
}

// CustomerSummary is a single row of the customer list. The address columns
// are comma-joined across the customer's addresses and null when it has none.
type CustomerSummary struct {
	Customer
	Cities   *string `json:"cities"`
	States   *string `json:"states"`
	PinCodes *string `json:"pin_codes"`
}

// Sortable columns for the customer list
const (
	SortFirstName   = "first_name"
	SortLastName    = "last_name"
	SortPhoneNumber = "phone_number"
	SortCity        = "city"
	SortState       = "state"
)

// Sort directions
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// CustomerFilter holds filtering options for listing customers
type CustomerFilter struct {
	Search  string
	City    string
	State   string
	PinCode string
	SortBy  string
	Order   string
	Page    int
	Limit   int
}

// Normalize applies pagination defaults and resolves unknown sort options to
// first_name ascending.
func (f *CustomerFilter) Normalize() {
	ValidateAndSetDefaults(&f.Page, &f.Limit)

	if !IsValidSortColumn(f.SortBy) {
		f.SortBy = SortFirstName
	}

	if strings.EqualFold(f.Order, OrderDesc) {
		f.Order = OrderDesc
	} else {
		f.Order = OrderAsc
	}

	f.Search = strings.TrimSpace(f.Search)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.PinCode = strings.TrimSpace(f.PinCode)
}

// IsValidSortColumn checks if the sort column is one of the listable columns
func IsValidSortColumn(column string) bool {
	switch column {
	case SortFirstName, SortLastName, SortPhoneNumber, SortCity, SortState:
		return true
	default:
		return false
	}
}
