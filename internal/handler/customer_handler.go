package handler

import (
	"log/slog"
	"net/http"

	"github.com/Raymond9734/customer-records-backend/internal/models"
	"github.com/Raymond9734/customer-records-backend/internal/service"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req service.CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeInvalidInput, msgInvalidJSON)
		return
	}

	customer, err := h.customerService.Create(r.Context(), req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, CustomerCreatedResponse{Customer: *customer, Message: msgCustomerCreated})
}

// ListCustomers handles GET /api/customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.CustomerFilter{
		Search:  query.Get("search"),
		City:    query.Get("city"),
		State:   query.Get("state"),
		PinCode: query.Get("pin_code"),
		SortBy:  query.Get("sortBy"),
		Order:   query.Get("order"),
		Page:    queryInt(r, "page"),
		Limit:   queryInt(r, "limit"),
	}

	result, err := h.customerService.List(r.Context(), filter)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, result)
}

// GetCustomer handles GET /api/customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerService.Get(r.Context(), pathID(r, "id"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, customer)
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req service.CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeInvalidInput, msgInvalidJSON)
		return
	}

	customer, err := h.customerService.Update(r.Context(), pathID(r, "id"), req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, UpdatedResponse{ID: customer.ID, Message: msgCustomerUpdated})
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, DeletedResponse{Message: msgCustomerDeleted, DeletedID: id})
}
