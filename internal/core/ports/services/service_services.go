package services

import (
	"context"

	"github.com/payservice/receipt_payments_app/internal/dto"
)

// ServiceReaderSvc defines read operations over a customer's services.
type ServiceReaderSvc interface {
	// ListServicesByCustomer returns the customer's services with
	// aggregated receipt totals. Returns apperrors.ErrNotFound if the
	// customer does not exist, has no services, or any owned service has
	// no receipts.
	ListServicesByCustomer(ctx context.Context, customerID string) ([]dto.ServiceResponse, error)
}

// ServiceSvcFacade combines all service-related service interfaces
type ServiceSvcFacade interface {
	ServiceReaderSvc
}
