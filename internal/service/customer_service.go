package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Raymond9734/customer-records-backend/internal/models"
	"github.com/Raymond9734/customer-records-backend/internal/repository"
	"github.com/Raymond9734/customer-records-backend/internal/validation"
)

// CustomerService handles customer business logic
type CustomerService interface {
	Create(ctx context.Context, req CustomerRequest) (*models.Customer, error)
	Get(ctx context.Context, id int64) (*models.CustomerDetail, error)
	List(ctx context.Context, filter models.CustomerFilter) (*CustomerListResult, error)
	Update(ctx context.Context, id int64, req CustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create validates and stores a new customer
func (s *customerService) Create(ctx context.Context, req CustomerRequest) (*models.Customer, error) {
	customer := req.ToCustomer()
	if err := validation.Validate(customer); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		logFailure(s.logger, "failed to create customer", err,
			slog.String("phone_number", customer.PhoneNumber),
		)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		slog.Int64("customer_id", customer.ID),
	)

	return customer, nil
}

// Get retrieves a customer with all of its addresses
func (s *customerService) Get(ctx context.Context, id int64) (*models.CustomerDetail, error) {
	if id <= 0 {
		return nil, models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}

	return s.customerRepo.GetWithAddresses(ctx, id)
}

// List retrieves one page of customers matching the filter
func (s *customerService) List(ctx context.Context, filter models.CustomerFilter) (*CustomerListResult, error) {
	filter.Normalize()

	customers, totalCount, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		logFailure(s.logger, "failed to list customers", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &CustomerListResult{
		Data:       customers,
		Pagination: models.NewPaginationResult(filter.Page, filter.Limit, totalCount),
	}, nil
}

// Update replaces the fields of an existing customer
func (s *customerService) Update(ctx context.Context, id int64, req CustomerRequest) (*models.Customer, error) {
	customer := req.ToCustomer()
	if err := validation.Validate(customer); err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}
	customer.ID = id

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		logFailure(s.logger, "failed to update customer", err,
			slog.Int64("customer_id", id),
		)
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	s.logger.Info("customer updated",
		slog.Int64("customer_id", id),
	)

	return customer, nil
}

// Delete removes a customer and, through the cascade, its addresses
func (s *customerService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		logFailure(s.logger, "failed to delete customer", err,
			slog.Int64("customer_id", id),
		)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.Info("customer deleted",
		slog.Int64("customer_id", id),
	)

	return nil
}

// logFailure logs expected outcomes such as not found at warn and everything
// else at error
func logFailure(logger *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", err.Error()))

	if models.IsNotFound(err) || models.IsConflict(err) {
		logger.Warn(msg, attrs...)
		return
	}
	logger.Error(msg, attrs...)
}
