package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus indicates the settlement state of a receipt.
// Transitions are forward-only: PENDING/PARTIALLY_PAID may move to
// PARTIALLY_PAID or PAID; PAID is terminal.
type ReceiptStatus string

const (
	ReceiptPending       ReceiptStatus = "PENDING"
	ReceiptPartiallyPaid ReceiptStatus = "PARTIALLY_PAID"
	ReceiptPaid          ReceiptStatus = "PAID"
)

// Receipt is a billable period's invoice for a service. ReceiptAmount is
// fixed at creation; PendingAmount only ever decreases, and status is PAID
// exactly when PendingAmount is zero.
type Receipt struct {
	ReceiptID     string          `json:"receiptID"` // Primary Key (UUID)
	ReceiptNumber string          `json:"receiptNumber"`
	ServiceID     string          `json:"serviceID"`
	CustomerID    string          `json:"customerID"` // Denormalized from service for query efficiency
	PeriodLabel   string          `json:"periodLabel"`
	DueDate       time.Time       `json:"dueDate"`
	ReceiptAmount decimal.Decimal `json:"receiptAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	Currency      CurrencyCode    `json:"currency"`
	Status        ReceiptStatus   `json:"status"`
}

// IsPaid reports whether the receipt is fully settled.
func (r Receipt) IsPaid() bool {
	return r.Status == ReceiptPaid
}
