package repositories

import (
	"context"

	"github.com/payservice/receipt_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentsByCustomer retrieves all payments made by a customer,
	// most recent first.
	FindPaymentsByCustomer(ctx context.Context, customerID string) ([]domain.Payment, error)
}

// PaymentWriter defines the single write boundary of the system.
type PaymentWriter interface {
	// SavePayment applies convertedAmount against the payment's receipt and
	// persists the payment row, atomically: within one database transaction
	// the receipt row is locked, its pending balance and status re-validated
	// against the locked state, the new pending amount and status computed
	// and written, and the payment inserted with the before/after balances.
	//
	// Returns apperrors.ErrOverpayment if the locked pending balance no
	// longer covers convertedAmount, apperrors.ErrValidation if the receipt
	// reached PAID in the meantime, apperrors.ErrNotFound if the receipt is
	// gone. On success returns the persisted payment and updated receipt.
	SavePayment(ctx context.Context, payment domain.Payment, convertedAmount decimal.Decimal) (*domain.Payment, *domain.Receipt, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
