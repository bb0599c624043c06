package dto

import (
	"time"

	"github.com/payservice/receipt_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceiptResponse is one receipt of a service+customer pair, joined with
// the owning customer and service summaries.
type ReceiptResponse struct {
	Customer *CustomerSummary `json:"customer"`
	Service  *ServiceSummary  `json:"service"`

	ReceiptNumber string          `json:"receiptNumber"`
	PeriodLabel   string          `json:"periodLabel"`
	DueDate       time.Time       `json:"dueDate"`
	ReceiptAmount decimal.Decimal `json:"receiptAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	Currency      string          `json:"currency"`
	ReceiptStatus string          `json:"receiptStatus"`
}

// ToReceiptResponse joins a receipt with its customer and service.
func ToReceiptResponse(r *domain.Receipt, c *domain.Customer, s *domain.Service) ReceiptResponse {
	return ReceiptResponse{
		Customer:      ToCustomerSummary(c),
		Service:       ToServiceSummary(s),
		ReceiptNumber: r.ReceiptNumber,
		PeriodLabel:   r.PeriodLabel,
		DueDate:       r.DueDate,
		ReceiptAmount: r.ReceiptAmount,
		PendingAmount: r.PendingAmount,
		Currency:      string(r.Currency),
		ReceiptStatus: string(r.Status),
	}
}
