package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Raymond9734/customer-records-backend/internal/idempotency"
	"github.com/Raymond9734/customer-records-backend/internal/models"
	"github.com/Raymond9734/customer-records-backend/internal/observability"
	"github.com/Raymond9734/customer-records-backend/internal/service"
)

// RouterConfig holds everything the HTTP API is built from
type RouterConfig struct {
	Customers      service.CustomerService
	Addresses      service.AddressService
	Database       HealthChecker
	Idempotency    *idempotency.Store
	Metrics        *observability.Metrics
	Logger         *slog.Logger
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	Production     bool
}

// NewRouter assembles the middleware stack and routes
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger

	customerHandler := NewCustomerHandler(cfg.Customers, logger)
	addressHandler := NewAddressHandler(cfg.Addresses, logger)
	validationHandler := NewValidationHandler(logger)

	var redisHealth HealthChecker
	if cfg.Idempotency != nil {
		redisHealth = cfg.Idempotency
	}
	healthHandler := NewHealthHandler(cfg.Database, redisHealth, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(cfg.Metrics.Middleware)
	r.Use(SecureHeadersMiddleware(cfg.Production, logger))
	r.Use(CORSMiddleware(cfg.AllowedOrigins))
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		r.Use(RateLimitMiddleware(cfg.RateLimit, cfg.RateWindow))
	}
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	// Set before any Route call so sub-routers inherit them.
	r.NotFound(endpointNotFound)
	r.MethodNotAllowed(endpointNotFound)

	r.Get("/health", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Use(idempotency.Middleware(cfg.Idempotency, logger))

			r.Post("/", customerHandler.CreateCustomer)
			r.Get("/", customerHandler.ListCustomers)

			r.Put("/address/{addressId}", addressHandler.UpdateAddress)
			r.Delete("/address/{addressId}", addressHandler.DeleteAddress)

			r.Get("/{id}", customerHandler.GetCustomer)
			r.Put("/{id}", customerHandler.UpdateCustomer)
			r.Delete("/{id}", customerHandler.DeleteCustomer)

			r.Post("/{id}/addresses", addressHandler.AddAddress)
			r.Get("/{id}/addresses", addressHandler.ListAddresses)
		})

		r.Route("/validate", func(r chi.Router) {
			r.Post("/customer", validationHandler.ValidateCustomer)
			r.Post("/address", validationHandler.ValidateAddress)
		})
	})

	return r
}

func endpointNotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, models.CodeNotFound, models.MsgEndpointNotFound)
}
