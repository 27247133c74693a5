package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Raymond9734/customer-records-backend/internal/db"
	"github.com/Raymond9734/customer-records-backend/internal/models"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	GetWithAddresses(ctx context.Context, id int64) (*models.CustomerDetail, error)
	List(ctx context.Context, filter models.CustomerFilter) ([]*models.CustomerSummary, int64, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id int64) error
}

// customerRepository implements CustomerRepository using PostgreSQL
type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create inserts a new customer
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, phone_number)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(
		ctx,
		query,
		customer.FirstName,
		customer.LastName,
		customer.PhoneNumber,
	).Scan(&customer.ID)

	if hasCode(err, uniqueViolation) {
		return models.ErrConflictWithMsg(models.MsgDuplicatePhone)
	}
	if err != nil {
		return storeError("failed to create customer", err)
	}

	return nil
}

// GetByID retrieves a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	return getCustomer(ctx, r.db, id)
}

// GetWithAddresses retrieves a customer and all of its addresses from one snapshot
func (r *customerRepository) GetWithAddresses(ctx context.Context, id int64) (*models.CustomerDetail, error) {
	var detail *models.CustomerDetail

	err := db.WithTx(ctx, r.db, db.ReadOnly, func(tx *sql.Tx) error {
		customer, err := getCustomer(ctx, tx, id)
		if err != nil {
			return err
		}

		addresses, err := selectAddresses(ctx, tx, id)
		if err != nil {
			return err
		}

		detail = &models.CustomerDetail{Customer: *customer, Addresses: addresses}
		return nil
	})
	if err != nil {
		return nil, asStoreError("failed to get customer", err)
	}

	return detail, nil
}

// List retrieves one page of customers and the total number matching the filter.
// Both reads share a snapshot so the total agrees with the page.
func (r *customerRepository) List(ctx context.Context, filter models.CustomerFilter) ([]*models.CustomerSummary, int64, error) {
	q := buildListQuery(filter)

	var totalCount int64
	customers := []*models.CustomerSummary{}

	err := db.WithTx(ctx, r.db, db.ReadOnly, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, q.CountSQL, q.CountArgs...).Scan(&totalCount); err != nil {
			return storeError("failed to count customers", err)
		}

		rows, err := tx.QueryContext(ctx, q.DataSQL, q.DataArgs...)
		if err != nil {
			return storeError("failed to list customers", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				customer                 models.CustomerSummary
				cities, states, pinCodes sql.NullString
			)
			err := rows.Scan(
				&customer.ID,
				&customer.FirstName,
				&customer.LastName,
				&customer.PhoneNumber,
				&cities,
				&states,
				&pinCodes,
			)
			if err != nil {
				return storeError("failed to scan customer", err)
			}

			customer.Cities = nullStringPtr(cities)
			customer.States = nullStringPtr(states)
			customer.PinCodes = nullStringPtr(pinCodes)
			customers = append(customers, &customer)
		}

		if err := rows.Err(); err != nil {
			return storeError("error iterating customers", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, asStoreError("failed to list customers", err)
	}

	return customers, totalCount, nil
}

// Update updates an existing customer
func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, phone_number = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(
		ctx,
		query,
		customer.FirstName,
		customer.LastName,
		customer.PhoneNumber,
		customer.ID,
	)
	if hasCode(err, uniqueViolation) {
		return models.ErrConflictWithMsg(models.MsgDuplicatePhone)
	}
	if err != nil {
		return storeError("failed to update customer", err)
	}

	return expectAffected(result, models.MsgCustomerNotFound)
}

// Delete removes a customer; its addresses go with it through the foreign key cascade
func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return storeError("failed to delete customer", err)
	}

	return expectAffected(result, models.MsgCustomerNotFound)
}

func getCustomer(ctx context.Context, q db.Querier, id int64) (*models.Customer, error) {
	query := `
		SELECT id, first_name, last_name, phone_number
		FROM customers
		WHERE id = $1`

	customer := &models.Customer{}
	err := q.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.PhoneNumber,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}
	if err != nil {
		return nil, storeError("failed to get customer", err)
	}

	return customer, nil
}

// expectAffected turns a zero-row write into a not found error
func expectAffected(result sql.Result, notFoundMsg string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFoundWithMsg(notFoundMsg)
	}

	return nil
}

// asStoreError keeps classified errors and wraps transaction plumbing failures
func asStoreError(op string, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return storeError(op, err)
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
