package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	portsrepo "github.com/payservice/receipt_payments_app/internal/core/ports/repositories"
	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/payservice/receipt_payments_app/internal/dto"
	"github.com/payservice/receipt_payments_app/internal/middleware"
)

// receiptService provides the receipt listing read path.
type receiptService struct {
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	serviceRepo  portsrepo.ServiceRepositoryFacade
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	serviceRepo portsrepo.ServiceRepositoryFacade,
) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo:  receiptRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// ListReceiptsByServiceAndCustomer returns the pair's receipts ordered by
// due date descending, joined with customer and service summaries.
func (s *receiptService) ListReceiptsByServiceAndCustomer(ctx context.Context, serviceID, customerID string) ([]dto.ReceiptResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer not found", apperrors.ErrNotFound)
		}
		logger.Error("Failed to load customer", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load customer %s: %w", customerID, err)
	}

	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: service not found", apperrors.ErrNotFound)
		}
		logger.Error("Failed to load service", slog.String("service_id", serviceID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load service %s: %w", serviceID, err)
	}

	receipts, err := s.receiptRepo.FindReceiptsByServiceAndCustomer(ctx, serviceID, customerID)
	if err != nil {
		logger.Error("Failed to list receipts", slog.String("service_id", serviceID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	if len(receipts) == 0 {
		return nil, fmt.Errorf("%w: no receipts found for this customer/service", apperrors.ErrNotFound)
	}

	responses := make([]dto.ReceiptResponse, len(receipts))
	for i, r := range receipts {
		responses[i] = dto.ToReceiptResponse(&r, customer, service)
	}

	logger.Debug("Receipts listed", slog.String("service_id", serviceID), slog.Int("count", len(responses)))
	return responses, nil
}
