package dto

import (
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MixedCurrencyLabel is returned as the currency of a service whose
// receipts do not all share a single currency.
const MixedCurrencyLabel = "MULTIMONEDA"

// ServiceResponse is one service of a customer with its receipt totals.
type ServiceResponse struct {
	ServiceName   string          `json:"serviceName"`
	Description   string          `json:"description"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

// ToServiceResponse builds the aggregated view of a service.
func ToServiceResponse(s *domain.Service, currency string, totalAmount, totalPending decimal.Decimal) ServiceResponse {
	return ServiceResponse{
		ServiceName:   s.ServiceName,
		Description:   s.Description,
		Currency:      currency,
		Amount:        totalAmount,
		PendingAmount: totalPending,
	}
}
