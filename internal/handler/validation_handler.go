package handler

import (
	"log/slog"
	"net/http"

	"github.com/Raymond9734/customer-records-backend/internal/models"
	"github.com/Raymond9734/customer-records-backend/internal/service"
	"github.com/Raymond9734/customer-records-backend/internal/validation"
)

// ValidationResponse reports every failing field at once
type ValidationResponse struct {
	Valid  bool                  `json:"valid"`
	Errors validation.Violations `json:"errors"`
}

// ValidationHandler exposes the shared rule set for form feedback
type ValidationHandler struct {
	logger *slog.Logger
}

// NewValidationHandler creates a new validation handler
func NewValidationHandler(logger *slog.Logger) *ValidationHandler {
	return &ValidationHandler{logger: logger}
}

// ValidateCustomer handles POST /api/validate/customer
func (h *ValidationHandler) ValidateCustomer(w http.ResponseWriter, r *http.Request) {
	var req service.CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeInvalidInput, msgInvalidJSON)
		return
	}

	h.respond(w, req.ToCustomer())
}

// ValidateAddress handles POST /api/validate/address
func (h *ValidationHandler) ValidateAddress(w http.ResponseWriter, r *http.Request) {
	var req service.AddressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeInvalidInput, msgInvalidJSON)
		return
	}

	h.respond(w, req.ToAddress())
}

func (h *ValidationHandler) respond(w http.ResponseWriter, v any) {
	violations, err := validation.ValidateAll(v)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, ValidationResponse{Valid: violations.Empty(), Errors: violations})
}
