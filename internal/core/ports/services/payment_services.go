package services

import (
	"context"

	"github.com/payservice/receipt_payments_app/internal/dto"
)

// PaymentRegistrarSvc defines the payment registration workflow.
type PaymentRegistrarSvc interface {
	// RegisterPayment validates and applies a payment against a receipt.
	// The validation pipeline is ordered; the first violated rule decides
	// the returned error kind. On success the receipt balance and status
	// are updated and an immutable payment record is persisted, atomically.
	RegisterPayment(ctx context.Context, receiptID, customerID string, req dto.RegisterPaymentRequest) (*dto.PaymentResponse, error)
}

// PaymentReaderSvc defines read operations over payment history.
type PaymentReaderSvc interface {
	// ListPaymentsByCustomer returns the customer's payments, most recent
	// first, each joined with its originating receipt and service.
	// Returns apperrors.ErrNotFound for an unknown customer and
	// apperrors.ErrEmptyResult for a known customer with no payments.
	ListPaymentsByCustomer(ctx context.Context, customerID string) ([]dto.PaymentResponse, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentRegistrarSvc
	PaymentReaderSvc
}
