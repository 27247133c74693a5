package handler

import (
	"log/slog"
	"net/http"

	"github.com/Raymond9734/customer-records-backend/internal/models"
	"github.com/Raymond9734/customer-records-backend/internal/service"
)

// AddressHandler handles address HTTP requests
type AddressHandler struct {
	addressService service.AddressService
	logger         *slog.Logger
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(addressService service.AddressService, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		logger:         logger,
	}
}

// AddAddress handles POST /api/customers/{id}/addresses
func (h *AddressHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var req service.AddressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeInvalidInput, msgInvalidJSON)
		return
	}

	address, err := h.addressService.Add(r.Context(), pathID(r, "id"), req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, AddressCreatedResponse{Address: *address, Message: msgAddressAdded})
}

// ListAddresses handles GET /api/customers/{id}/addresses
func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.addressService.ListByCustomer(r.Context(), pathID(r, "id"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, addresses)
}

// UpdateAddress handles PUT /api/customers/address/{addressId}
func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var req service.AddressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeInvalidInput, msgInvalidJSON)
		return
	}

	address, err := h.addressService.Update(r.Context(), pathID(r, "addressId"), req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, UpdatedResponse{ID: address.ID, Message: msgAddressUpdated})
}

// DeleteAddress handles DELETE /api/customers/address/{addressId}
func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "addressId")

	if err := h.addressService.Delete(r.Context(), id); err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, DeletedResponse{Message: msgAddressDeleted, DeletedID: id})
}
