package service

import (
	"github.com/Raymond9734/customer-records-backend/internal/models"
)

// CustomerRequest is the body of a customer create or update
type CustomerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// ToCustomer converts the request into a trimmed customer model
func (r CustomerRequest) ToCustomer() *models.Customer {
	customer := &models.Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
	customer.Normalize()
	return customer
}

// AddressRequest is the body of an address create or update
type AddressRequest struct {
	AddressDetails string `json:"address_details"`
	City           string `json:"city"`
	State          string `json:"state"`
	PinCode        string `json:"pin_code"`
}

// ToAddress converts the request into a trimmed address model
func (r AddressRequest) ToAddress() *models.Address {
	address := &models.Address{
		AddressDetails: r.AddressDetails,
		City:           r.City,
		State:          r.State,
		PinCode:        r.PinCode,
	}
	address.Normalize()
	return address
}

// CustomerListResult represents paginated customer list results
type CustomerListResult struct {
	Data       []*models.CustomerSummary `json:"data"`
	Pagination models.PaginationResult   `json:"pagination"`
}
