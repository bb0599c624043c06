package repositories

import (
	"context"

	"github.com/payservice/receipt_payments_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its ID.
	// Returns apperrors.ErrNotFound if no such customer exists.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces.
// Customers are provisioned upstream, so there is no writer side here.
type CustomerRepositoryFacade interface {
	CustomerReader
}
