package repositories

import (
	"context"

	"github.com/payservice/receipt_payments_app/internal/core/domain"
)

// ServiceReader defines read operations for service data
type ServiceReader interface {
	// FindServiceByID retrieves a service by its ID.
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)

	// FindServicesByCustomer retrieves all services owned by a customer.
	FindServicesByCustomer(ctx context.Context, customerID string) ([]domain.Service, error)

	// FindServicesByIDs retrieves multiple services at once, keyed by ID.
	// Missing IDs are simply absent from the map.
	FindServicesByIDs(ctx context.Context, serviceIDs []string) (map[string]domain.Service, error)
}

// ServiceRepositoryFacade combines all service-related repository interfaces.
type ServiceRepositoryFacade interface {
	ServiceReader
}
