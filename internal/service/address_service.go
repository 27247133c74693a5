package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Raymond9734/customer-records-backend/internal/models"
	"github.com/Raymond9734/customer-records-backend/internal/repository"
	"github.com/Raymond9734/customer-records-backend/internal/validation"
)

// AddressService handles address business logic
type AddressService interface {
	Add(ctx context.Context, customerID int64, req AddressRequest) (*models.Address, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*models.Address, error)
	Update(ctx context.Context, id int64, req AddressRequest) (*models.Address, error)
	Delete(ctx context.Context, id int64) error
}

type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressService creates a new address service
func NewAddressService(addressRepo repository.AddressRepository, logger *slog.Logger) AddressService {
	return &addressService{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// Add validates an address and stores it under an existing customer
func (s *addressService) Add(ctx context.Context, customerID int64, req AddressRequest) (*models.Address, error) {
	address := req.ToAddress()
	if err := validation.Validate(address); err != nil {
		return nil, err
	}

	if customerID <= 0 {
		return nil, models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}
	address.CustomerID = customerID

	if err := s.addressRepo.CreateForCustomer(ctx, address); err != nil {
		logFailure(s.logger, "failed to add address", err,
			slog.Int64("customer_id", customerID),
		)
		return nil, fmt.Errorf("failed to add address: %w", err)
	}

	s.logger.Info("address added",
		slog.Int64("address_id", address.ID),
		slog.Int64("customer_id", customerID),
	)

	return address, nil
}

// ListByCustomer returns the customer's addresses ordered by id
func (s *addressService) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Address, error) {
	if customerID <= 0 {
		return nil, models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}

	return s.addressRepo.ListByCustomer(ctx, customerID)
}

// Update replaces the fields of an existing address
func (s *addressService) Update(ctx context.Context, id int64, req AddressRequest) (*models.Address, error) {
	address := req.ToAddress()
	if err := validation.Validate(address); err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, models.ErrNotFoundWithMsg(models.MsgAddressNotFound)
	}
	address.ID = id

	if err := s.addressRepo.Update(ctx, address); err != nil {
		logFailure(s.logger, "failed to update address", err,
			slog.Int64("address_id", id),
		)
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	s.logger.Info("address updated", slog.Int64("address_id", id))

	return address, nil
}

// Delete removes a single address
func (s *addressService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return models.ErrNotFoundWithMsg(models.MsgAddressNotFound)
	}

	if err := s.addressRepo.Delete(ctx, id); err != nil {
		logFailure(s.logger, "failed to delete address", err,
			slog.Int64("address_id", id),
		)
		return fmt.Errorf("failed to delete address: %w", err)
	}

	s.logger.Info("address deleted", slog.Int64("address_id", id))

	return nil
}
