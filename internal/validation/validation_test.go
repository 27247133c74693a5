package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raymond9734/customer-records-backend/internal/models"
)

func validCustomer() models.Customer {
	return models.Customer{FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "+919876543210"}
}

func validAddress() models.Address {
	return models.Address{AddressDetails: "123 Main St Apt 4", City: "Springfield", State: "IL", PinCode: "62704"}
}

func TestValidate_Customer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.Customer)
		wantMsg string
	}{
		{name: "valid", mutate: func(c *models.Customer) {}},
		{name: "valid without plus", mutate: func(c *models.Customer) { c.PhoneNumber = "9876543" }},
		{name: "missing first name", mutate: func(c *models.Customer) { c.FirstName = "" }, wantMsg: "First name is required"},
		{name: "short first name", mutate: func(c *models.Customer) { c.FirstName = "A" }, wantMsg: "First name must be at least 2 characters"},
		{name: "short last name", mutate: func(c *models.Customer) { c.LastName = "L" }, wantMsg: "Last name must be at least 2 characters"},
		{name: "missing phone", mutate: func(c *models.Customer) { c.PhoneNumber = "" }, wantMsg: "Phone number is required"},
		{name: "phone too short", mutate: func(c *models.Customer) { c.PhoneNumber = "123456" }, wantMsg: "Phone number must be 7-15 digits, optional + prefix"},
		{name: "phone too long", mutate: func(c *models.Customer) { c.PhoneNumber = "1234567890123456" }, wantMsg: "Phone number must be 7-15 digits, optional + prefix"},
		{name: "phone with letters", mutate: func(c *models.Customer) { c.PhoneNumber = "12345abc" }, wantMsg: "Phone number must be 7-15 digits, optional + prefix"},
		{name: "phone with inner plus", mutate: func(c *models.Customer) { c.PhoneNumber = "12+3456789" }, wantMsg: "Phone number must be 7-15 digits, optional + prefix"},
		{
			name: "first failing field wins",
			mutate: func(c *models.Customer) {
				c.FirstName = ""
				c.PhoneNumber = "bad"
			},
			wantMsg: "First name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)

			err := Validate(&c)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var appErr *models.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, models.CodeInvalidInput, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestValidate_Address(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *models.Address)
		wantMsg string
	}{
		{name: "valid", mutate: func(a *models.Address) {}},
		{name: "short details", mutate: func(a *models.Address) { a.AddressDetails = "12 A" }, wantMsg: "Address must be at least 5 characters"},
		{name: "missing city", mutate: func(a *models.Address) { a.City = "" }, wantMsg: "City is required"},
		{name: "short state", mutate: func(a *models.Address) { a.State = "I" }, wantMsg: "State must be at least 2 characters"},
		{name: "pin too short", mutate: func(a *models.Address) { a.PinCode = "123" }, wantMsg: "PIN code must be 4-10 digits"},
		{name: "pin too long", mutate: func(a *models.Address) { a.PinCode = "12345678901" }, wantMsg: "PIN code must be 4-10 digits"},
		{name: "pin not digits", mutate: func(a *models.Address) { a.PinCode = "AB12 3CD" }, wantMsg: "PIN code must be 4-10 digits"},
		{name: "pin ten digits", mutate: func(a *models.Address) { a.PinCode = "1234567890" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAddress()
			tt.mutate(&a)

			err := Validate(&a)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateAll_AggregatesEveryField(t *testing.T) {
	violations, err := ValidateAll(&models.Address{City: "X", PinCode: "12"})
	require.NoError(t, err)

	assert.Equal(t, Violations{
		"address_details": "Address is required",
		"city":            "City must be at least 2 characters",
		"state":           "State is required",
		"pin_code":        "PIN code must be 4-10 digits",
	}, violations)
}

func TestValidateAll_Valid(t *testing.T) {
	c := validCustomer()
	violations, err := ValidateAll(&c)
	require.NoError(t, err)
	assert.True(t, violations.Empty())
}

func TestValidate_RejectsNonStruct(t *testing.T) {
	err := Validate("not a struct")
	require.Error(t, err)

	var appErr *models.AppError
	assert.False(t, errors.As(err, &appErr))
}
