package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Raymond9734/customer-records-backend/internal/models"
)

// Postgres SQLSTATE codes the repositories translate
const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// storeError wraps an unexpected driver failure with the operation that hit it
func storeError(op string, err error) error {
	return models.ErrStore(fmt.Errorf("%s: %w", op, err))
}
