package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	portsrepo "github.com/payservice/receipt_payments_app/internal/core/ports/repositories"
	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/payservice/receipt_payments_app/internal/dto"
	"github.com/payservice/receipt_payments_app/internal/middleware"
)

// paymentService implements the payment registration workflow and the
// payment history query.
type paymentService struct {
	paymentRepo  portsrepo.PaymentRepositoryFacade
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	serviceRepo  portsrepo.ServiceRepositoryFacade
	rateSvc      portssvc.ExchangeRateSvcFacade
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	serviceRepo portsrepo.ServiceRepositoryFacade,
	rateSvc portssvc.ExchangeRateSvcFacade,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:  paymentRepo,
		receiptRepo:  receiptRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		rateSvc:      rateSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RegisterPayment runs the ordered validation pipeline and applies the
// payment. The first violated rule decides the error; only the final
// SavePayment step mutates state, atomically.
func (s *paymentService) RegisterPayment(ctx context.Context, receiptID, customerID string, req dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// 1. Currency allow-list.
	currency := domain.NormalizeCurrency(req.PaymentCurrency)
	if !currency.IsSupported() {
		return nil, fmt.Errorf("%w: only PEN or USD allowed", apperrors.ErrValidation)
	}

	// 2. Receipt existence and ownership. A receipt owned by a different
	// customer reports the same NotFound as a missing one.
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: receipt not found", apperrors.ErrNotFound)
		}
		logger.Error("Failed to load receipt for payment", slog.String("receipt_id", receiptID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load receipt %s: %w", receiptID, err)
	}
	if receipt.CustomerID != customerID {
		logger.Warn("Receipt belongs to a different customer", slog.String("receipt_id", receiptID))
		return nil, fmt.Errorf("%w: receipt not found", apperrors.ErrNotFound)
	}

	// 3. A fully settled receipt accepts no further payments.
	if receipt.IsPaid() {
		return nil, fmt.Errorf("%w: receipt already PAID; no further payments allowed", apperrors.ErrValidation)
	}

	// 4. Prior-receipt gate: every earlier-dated receipt of the same
	// service+customer must be PAID before this one can be paid.
	previous, err := s.receiptRepo.FindReceiptsDueBefore(ctx, receipt.ServiceID, receipt.CustomerID, receipt.DueDate)
	if err != nil {
		logger.Error("Failed to load previous receipts", slog.String("receipt_id", receiptID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load previous receipts: %w", err)
	}
	for _, prev := range previous {
		if !prev.IsPaid() {
			return nil, fmt.Errorf("%w: cannot pay this receipt while previous receipts are unpaid", apperrors.ErrPendingObligation)
		}
	}

	// 5. Amount positivity.
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	// 6-7. Rate resolution and conversion into the receipt's currency.
	converted, rate, err := s.rateSvc.Convert(ctx, req.Amount, currency, receipt.Currency)
	if err != nil {
		return nil, err
	}

	// 8. Overpayment: the converted amount may settle the receipt exactly
	// but never exceed its pending balance.
	if converted.GreaterThan(receipt.PendingAmount) {
		return nil, fmt.Errorf("%w: payment of %s exceeds pending amount %s", apperrors.ErrOverpayment, converted.String(), receipt.PendingAmount.String())
	}

	// 9. The sole write boundary. The repository re-validates against the
	// locked receipt row, so a concurrent registration cannot drive the
	// balance negative.
	payment := domain.Payment{
		PaymentID:       uuid.NewString(),
		ReceiptID:       receipt.ReceiptID,
		CustomerID:      customerID,
		PaymentDate:     time.Now().UTC(),
		Amount:          req.Amount,
		PaymentCurrency: currency,
		ExchangeRate:    rate,
	}
	saved, updatedReceipt, err := s.paymentRepo.SavePayment(ctx, payment, converted)
	if err != nil {
		if errors.Is(err, apperrors.ErrOverpayment) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Payment rejected against refreshed receipt state", slog.String("receipt_id", receiptID), slog.String("error", err.Error()))
			return nil, err
		}
		logger.Error("Failed to save payment", slog.String("receipt_id", receiptID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	// 10. Join customer and service for presentation. Missing joins are
	// tolerated and rendered as nulls.
	customer, service := s.loadJoins(ctx, customerID, receipt.ServiceID)

	logger.Info("Payment registered",
		slog.String("payment_id", saved.PaymentID),
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("new_status", string(saved.PaymentStatus)),
	)

	resp := dto.ToPaymentResponse(saved, customer, service, updatedReceipt)
	return &resp, nil
}

// loadJoins fetches the customer and service blocks for presentation,
// returning nil for whichever cannot be found.
func (s *paymentService) loadJoins(ctx context.Context, customerID, serviceID string) (*domain.Customer, *domain.Service) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Failed to load customer for presentation", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		}
		customer = nil
	}

	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Failed to load service for presentation", slog.String("service_id", serviceID), slog.String("error", err.Error()))
		}
		service = nil
	}

	return customer, service
}

// ListPaymentsByCustomer returns the customer's payment history, most
// recent first. A payment whose receipt has since been deleted is returned
// with nil receipt and service joins rather than dropped.
func (s *paymentService) ListPaymentsByCustomer(ctx context.Context, customerID string) ([]dto.PaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer not found", apperrors.ErrNotFound)
		}
		logger.Error("Failed to load customer", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load customer %s: %w", customerID, err)
	}

	payments, err := s.paymentRepo.FindPaymentsByCustomer(ctx, customerID)
	if err != nil {
		logger.Error("Failed to list payments", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if len(payments) == 0 {
		return nil, fmt.Errorf("%w: no payments found for customer", apperrors.ErrEmptyResult)
	}

	// Batch the receipt and service joins.
	receiptIDs := make([]string, 0, len(payments))
	seen := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		if _, ok := seen[p.ReceiptID]; !ok {
			seen[p.ReceiptID] = struct{}{}
			receiptIDs = append(receiptIDs, p.ReceiptID)
		}
	}
	receiptsMap, err := s.receiptRepo.FindReceiptsByIDs(ctx, receiptIDs)
	if err != nil {
		logger.Error("Failed to batch-load receipts for payment history", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load receipts: %w", err)
	}

	serviceIDs := make([]string, 0, len(receiptsMap))
	seenSvc := make(map[string]struct{}, len(receiptsMap))
	for _, r := range receiptsMap {
		if _, ok := seenSvc[r.ServiceID]; !ok {
			seenSvc[r.ServiceID] = struct{}{}
			serviceIDs = append(serviceIDs, r.ServiceID)
		}
	}
	servicesMap, err := s.serviceRepo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		logger.Error("Failed to batch-load services for payment history", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load services: %w", err)
	}

	responses := make([]dto.PaymentResponse, len(payments))
	for i, p := range payments {
		var receipt *domain.Receipt
		var service *domain.Service
		if r, ok := receiptsMap[p.ReceiptID]; ok {
			receipt = &r
			if svc, ok := servicesMap[r.ServiceID]; ok {
				service = &svc
			}
		}
		responses[i] = dto.ToPaymentResponse(&p, customer, service, receipt)
	}

	logger.Info("Payments listed", slog.String("customer_id", customerID), slog.Int("count", len(responses)))
	return responses, nil
}
