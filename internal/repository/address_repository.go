package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Raymond9734/customer-records-backend/internal/db"
	"github.com/Raymond9734/customer-records-backend/internal/models"
)

// AddressRepository defines the interface for address data access
type AddressRepository interface {
	CreateForCustomer(ctx context.Context, address *models.Address) error
	ListByCustomer(ctx context.Context, customerID int64) ([]*models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id int64) error
}

type addressRepository struct {
	db *sql.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *sql.DB) AddressRepository {
	return &addressRepository{db: db}
}

// CreateForCustomer inserts an address after confirming its customer exists.
// The customer row stays key-share locked until commit, so a concurrent
// delete cannot leave the new address orphaned.
func (r *addressRepository) CreateForCustomer(ctx context.Context, address *models.Address) error {
	err := db.WithTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM customers WHERE id = $1 FOR KEY SHARE`,
			address.CustomerID,
		).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
		}
		if err != nil {
			return storeError("failed to check customer", err)
		}

		query := `
			INSERT INTO addresses (customer_id, address_details, city, state, pin_code)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`

		err = tx.QueryRowContext(
			ctx,
			query,
			address.CustomerID,
			address.AddressDetails,
			address.City,
			address.State,
			address.PinCode,
		).Scan(&address.ID)
		if hasCode(err, foreignKeyViolation) {
			return models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
		}
		if err != nil {
			return storeError("failed to create address", err)
		}
		return nil
	})
	if err != nil {
		return asStoreError("failed to create address", err)
	}

	return nil
}

// ListByCustomer returns every address owned by the customer, or not found
// when the customer does not exist
func (r *addressRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Address, error) {
	var addresses []*models.Address

	err := db.WithTx(ctx, r.db, db.ReadOnly, func(tx *sql.Tx) error {
		if _, err := getCustomer(ctx, tx, customerID); err != nil {
			return err
		}

		var err error
		addresses, err = selectAddresses(ctx, tx, customerID)
		return err
	})
	if err != nil {
		return nil, asStoreError("failed to list addresses", err)
	}

	return addresses, nil
}

// Update updates an existing address by its own ID
func (r *addressRepository) Update(ctx context.Context, address *models.Address) error {
	query := `
		UPDATE addresses
		SET address_details = $1, city = $2, state = $3, pin_code = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(
		ctx,
		query,
		address.AddressDetails,
		address.City,
		address.State,
		address.PinCode,
		address.ID,
	)
	if err != nil {
		return storeError("failed to update address", err)
	}

	return expectAffected(result, models.MsgAddressNotFound)
}

// Delete removes an address by its own ID
func (r *addressRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return storeError("failed to delete address", err)
	}

	return expectAffected(result, models.MsgAddressNotFound)
}

func selectAddresses(ctx context.Context, q db.Querier, customerID int64) ([]*models.Address, error) {
	query := `
		SELECT id, customer_id, address_details, city, state, pin_code
		FROM addresses
		WHERE customer_id = $1
		ORDER BY id`

	rows, err := q.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, storeError("failed to list addresses", err)
	}
	defer rows.Close()

	addresses := []*models.Address{}
	for rows.Next() {
		address := &models.Address{}
		err := rows.Scan(
			&address.ID,
			&address.CustomerID,
			&address.AddressDetails,
			&address.City,
			&address.State,
			&address.PinCode,
		)
		if err != nil {
			return nil, storeError("failed to scan address", err)
		}
		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("error iterating addresses", err)
	}

	return addresses, nil
}
