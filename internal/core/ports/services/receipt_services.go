package services

import (
	"context"

	"github.com/payservice/receipt_payments_app/internal/dto"
)

// ReceiptReaderSvc defines read operations over receipts.
type ReceiptReaderSvc interface {
	// ListReceiptsByServiceAndCustomer returns the receipts of a
	// service+customer pair ordered by due date descending, joined with
	// customer and service summaries. Returns apperrors.ErrNotFound if the
	// customer or service does not exist or the pair has no receipts.
	ListReceiptsByServiceAndCustomer(ctx context.Context, serviceID, customerID string) ([]dto.ReceiptResponse, error)
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
}
