package models

import (
	"errors"
	"fmt"
)

// Common error types
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("operation conflicts with current state")
)

// Error codes carried by AppError
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeStore        = "STORE_ERROR"
)

// User-facing messages shared by the repository and handler layers
const (
	MsgCustomerNotFound   = "Customer not found"
	MsgAddressNotFound    = "Address not found"
	MsgDuplicatePhone     = "Phone number already exists"
	MsgEndpointNotFound   = "Endpoint not found"
	MsgSomethingWentWrong = "Something went wrong!"
)

// AppError represents an application-level error with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrInvalidInput creates a validation error
func ErrInvalidInput(message string) error {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
	}
}

// ErrNotFoundWithMsg creates a not found error with custom message
func ErrNotFoundWithMsg(message string) error {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
		Err:     ErrNotFound,
	}
}

// ErrConflictWithMsg creates a conflict error with custom message
func ErrConflictWithMsg(message string) error {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Err:     ErrConflict,
	}
}

// ErrStore wraps an unexpected datastore failure. The driver message is kept
// as the user-facing message.
func ErrStore(err error) error {
	return &AppError{
		Code:    CodeStore,
		Message: err.Error(),
		Err:     err,
	}
}

// IsNotFound reports whether err carries a not found classification
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err carries a conflict classification
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
