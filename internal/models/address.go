package models

import "strings"

// Address represents a location owned by exactly one customer
type Address struct {
	ID             int64  `json:"id"`
	CustomerID     int64  `json:"customer_id"`
	AddressDetails string `json:"address_details" validate:"required,min=5"`
	City           string `json:"city" validate:"required,min=2"`
	State          string `json:"state" validate:"required,min=2"`
	PinCode        string `json:"pin_code" validate:"required,pincode"`
}

// Normalize trims surrounding whitespace from all text fields
func (a *Address) Normalize() {
	a.AddressDetails = strings.TrimSpace(a.AddressDetails)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.PinCode = strings.TrimSpace(a.PinCode)
}
