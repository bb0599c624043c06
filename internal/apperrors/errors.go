package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
// Ownership failures (a receipt that belongs to a different customer)
// deliberately reuse this error so callers cannot probe for the existence
// of other customers' receipts.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks, or that
// the target receipt is in a state that cannot be mutated (already PAID).
var ErrValidation = errors.New("validation error")

// ErrPendingObligation indicates that an earlier-dated receipt for the same
// service is still unpaid, blocking payment of a later one.
var ErrPendingObligation = errors.New("previous receipt is unpaid")

// ErrOverpayment indicates that a payment, after currency conversion,
// exceeds the receipt's pending balance.
var ErrOverpayment = errors.New("payment exceeds pending amount")

// ErrEmptyResult indicates that the referenced entity exists but has no
// associated records for a listing query. Distinct from ErrNotFound.
var ErrEmptyResult = errors.New("no records found")

// ErrInternal indicates an unanticipated failure that should not leak
// internals to the caller.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with a status code hint and a message
// safe to log. Repositories use it for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
