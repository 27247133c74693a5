package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Raymond9734/customer-records-backend/internal/models"
)

// Response messages
const (
	msgCustomerCreated = "Customer created successfully"
	msgCustomerUpdated = "Customer updated successfully"
	msgCustomerDeleted = "Customer deleted successfully"
	msgAddressAdded    = "Address added successfully"
	msgAddressUpdated  = "Address updated successfully"
	msgAddressDeleted  = "Address deleted successfully"
	msgInvalidJSON     = "Invalid JSON format"
)

// ErrorResponse represents a standard error response. Error is the message
// shown to the user.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CustomerCreatedResponse is the created customer plus a confirmation message
type CustomerCreatedResponse struct {
	models.Customer
	Message string `json:"message"`
}

// AddressCreatedResponse is the created address plus a confirmation message
type AddressCreatedResponse struct {
	models.Address
	Message string `json:"message"`
}

// UpdatedResponse confirms an update
type UpdatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// DeletedResponse confirms a delete
type DeletedResponse struct {
	Message   string `json:"message"`
	DeletedID int64  `json:"deletedID"`
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		// The status line is already sent, so an encoding failure cannot be reported.
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondError writes a standard error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondSuccess writes a successful response with 200 OK
func respondSuccess(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, data)
}

// respondCreated writes a successful response with 201 Created
func respondCreated(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusCreated, data)
}
