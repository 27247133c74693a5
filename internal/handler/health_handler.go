package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	database HealthChecker
	redis    HealthChecker
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler. redis may be nil when the
// idempotency store is disabled.
func NewHealthHandler(database, redis HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		database: database,
		redis:    redis,
		logger:   logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string),
	}

	h.check(ctx, &response, "database", h.database)
	h.check(ctx, &response, "redis", h.redis)

	if response.Status == "healthy" {
		respondSuccess(w, response)
	} else {
		respondJSON(w, http.StatusServiceUnavailable, response)
	}
}

func (h *HealthHandler) check(ctx context.Context, response *HealthResponse, name string, checker HealthChecker) {
	if checker == nil {
		response.Services[name] = "not_configured"
		return
	}

	if err := checker.Health(ctx); err != nil {
		h.logger.Error(name+" health check failed", slog.String("error", err.Error()))
		response.Status = "unhealthy"
		response.Services[name] = "unhealthy"
		return
	}

	response.Services[name] = "healthy"
}
