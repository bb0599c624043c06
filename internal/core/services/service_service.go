package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	portsrepo "github.com/payservice/receipt_payments_app/internal/core/ports/repositories"
	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/payservice/receipt_payments_app/internal/dto"
	"github.com/payservice/receipt_payments_app/internal/middleware"
)

// serviceService provides the per-customer service summary aggregation.
type serviceService struct {
	serviceRepo  portsrepo.ServiceRepositoryFacade
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewServiceService creates a new service summary service.
func NewServiceService(
	serviceRepo portsrepo.ServiceRepositoryFacade,
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
) portssvc.ServiceSvcFacade {
	return &serviceService{
		serviceRepo:  serviceRepo,
		receiptRepo:  receiptRepo,
		customerRepo: customerRepo,
	}
}

var _ portssvc.ServiceSvcFacade = (*serviceService)(nil)

// ListServicesByCustomer aggregates receipt totals per service. A service
// with zero receipts is a data-integrity gap and fails the whole listing
// with NotFound rather than being silently omitted.
func (s *serviceService) ListServicesByCustomer(ctx context.Context, customerID string) ([]dto.ServiceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer not found", apperrors.ErrNotFound)
		}
		logger.Error("Failed to load customer", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load customer %s: %w", customerID, err)
	}

	services, err := s.serviceRepo.FindServicesByCustomer(ctx, customerID)
	if err != nil {
		logger.Error("Failed to list services", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("%w: customer has no registered services", apperrors.ErrNotFound)
	}

	responses := make([]dto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		receipts, err := s.receiptRepo.FindReceiptsByServiceAndCustomer(ctx, svc.ServiceID, customerID)
		if err != nil {
			logger.Error("Failed to load receipts for aggregation", slog.String("service_id", svc.ServiceID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to load receipts for service %s: %w", svc.ServiceID, err)
		}
		if len(receipts) == 0 {
			return nil, fmt.Errorf("%w: service %s has no receipts for this customer", apperrors.ErrNotFound, svc.ServiceName)
		}

		currency := string(receipts[0].Currency)
		totalAmount := decimal.Zero
		totalPending := decimal.Zero
		for _, r := range receipts {
			if string(r.Currency) != currency {
				currency = dto.MixedCurrencyLabel
			}
			totalAmount = totalAmount.Add(r.ReceiptAmount)
			totalPending = totalPending.Add(r.PendingAmount)
		}

		responses = append(responses, dto.ToServiceResponse(&svc, currency, totalAmount, totalPending))
	}

	logger.Debug("Services listed", slog.String("customer_id", customerID), slog.Int("count", len(responses)))
	return responses, nil
}
