package dto

import (
	"time"

	"github.com/payservice/receipt_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest is the body of the register-payment call.
// Amount presence and positivity are validated inside the workflow so the
// pipeline's error ordering is preserved; only the currency format is
// checked at binding time.
type RegisterPaymentRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	PaymentCurrency string          `json:"paymentCurrency" binding:"required,currencycode"`
}

// CustomerSummary is the customer block embedded in responses.
type CustomerSummary struct {
	Names    string `json:"names"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
}

// ServiceSummary is the service block embedded in responses.
type ServiceSummary struct {
	ServiceName string `json:"serviceName"`
	IsActive    bool   `json:"isActive"`
	Description string `json:"description"`
}

// ReceiptInfo is the receipt block embedded in responses.
type ReceiptInfo struct {
	ReceiptNumber string          `json:"receiptNumber"`
	PeriodLabel   string          `json:"periodLabel"`
	DueDate       time.Time       `json:"dueDate"`
	ReceiptAmount decimal.Decimal `json:"receiptAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	Currency      string          `json:"currency"`
	ReceiptStatus string          `json:"receiptStatus"`
}

// PaymentResponse is the joined view returned after a successful
// registration and by the payment history listing. Customer, Service and
// Receipt are pointers: a historical payment whose receipt has since been
// deleted is returned with nil joins rather than dropped.
type PaymentResponse struct {
	Customer *CustomerSummary `json:"customer"`
	Service  *ServiceSummary  `json:"service"`
	Receipt  *ReceiptInfo     `json:"receipt"`

	Amount                decimal.Decimal `json:"amount"`
	PaymentCurrency       string          `json:"paymentCurrency"`
	ExchangeRate          decimal.Decimal `json:"exchangeRate"`
	PreviousPendingAmount decimal.Decimal `json:"previousPendingAmount"`
	NewPendingAmount      decimal.Decimal `json:"newPendingAmount"`
	PaymentStatus         string          `json:"paymentStatus"`
	PaymentDate           time.Time       `json:"paymentDate"`
}

// ToCustomerSummary maps a domain customer to its response block.
func ToCustomerSummary(c *domain.Customer) *CustomerSummary {
	if c == nil {
		return nil
	}
	return &CustomerSummary{
		Names:    c.Names,
		Lastname: c.Lastname,
		Email:    c.Email,
	}
}

// ToServiceSummary maps a domain service to its response block.
func ToServiceSummary(s *domain.Service) *ServiceSummary {
	if s == nil {
		return nil
	}
	return &ServiceSummary{
		ServiceName: s.ServiceName,
		IsActive:    s.IsActive,
		Description: s.Description,
	}
}

// ToReceiptInfo maps a domain receipt to its response block.
func ToReceiptInfo(r *domain.Receipt) *ReceiptInfo {
	if r == nil {
		return nil
	}
	return &ReceiptInfo{
		ReceiptNumber: r.ReceiptNumber,
		PeriodLabel:   r.PeriodLabel,
		DueDate:       r.DueDate,
		ReceiptAmount: r.ReceiptAmount,
		PendingAmount: r.PendingAmount,
		Currency:      string(r.Currency),
		ReceiptStatus: string(r.Status),
	}
}

// ToPaymentResponse joins a payment with its customer, service and receipt
// into the response shape. Any of the joined records may be nil.
func ToPaymentResponse(p *domain.Payment, c *domain.Customer, s *domain.Service, r *domain.Receipt) PaymentResponse {
	return PaymentResponse{
		Customer:              ToCustomerSummary(c),
		Service:               ToServiceSummary(s),
		Receipt:               ToReceiptInfo(r),
		Amount:                p.Amount,
		PaymentCurrency:       string(p.PaymentCurrency),
		ExchangeRate:          p.ExchangeRate,
		PreviousPendingAmount: p.PreviousPendingAmount,
		NewPendingAmount:      p.NewPendingAmount,
		PaymentStatus:         string(p.PaymentStatus),
		PaymentDate:           p.PaymentDate,
	}
}
