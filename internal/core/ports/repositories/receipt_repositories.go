package repositories

import (
	"context"
	"time"

	"github.com/payservice/receipt_payments_app/internal/core/domain"
)

// ReceiptReader defines read operations for receipt data
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt by its ID.
	// Returns apperrors.ErrNotFound if no such receipt exists.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// FindReceiptsByServiceAndCustomer retrieves all receipts for a
	// service+customer pair, ordered by due date descending.
	FindReceiptsByServiceAndCustomer(ctx context.Context, serviceID, customerID string) ([]domain.Receipt, error)

	// FindReceiptsDueBefore retrieves the receipts of the same
	// service+customer pair whose due date is strictly before the given
	// date, ordered by due date ascending.
	FindReceiptsDueBefore(ctx context.Context, serviceID, customerID string, dueDate time.Time) ([]domain.Receipt, error)

	// FindReceiptsByIDs retrieves multiple receipts at once, keyed by ID.
	// Missing IDs are simply absent from the map.
	FindReceiptsByIDs(ctx context.Context, receiptIDs []string) (map[string]domain.Receipt, error)
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces.
// Receipt mutation happens only inside PaymentWriter.SavePayment, so there
// is no standalone receipt writer.
type ReceiptRepositoryFacade interface {
	ReceiptReader
}
