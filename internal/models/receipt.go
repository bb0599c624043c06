package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus mirrors the receipt_status column values.
type ReceiptStatus string

const (
	ReceiptPending       ReceiptStatus = "PENDING"
	ReceiptPartiallyPaid ReceiptStatus = "PARTIALLY_PAID"
	ReceiptPaid          ReceiptStatus = "PAID"
)

// Receipt mirrors the receipts table. receipt_amount is immutable after
// creation; pending_amount and receipt_status are only written by the
// payment registration transaction.
type Receipt struct {
	ReceiptID     string
	ReceiptNumber string
	ServiceID     string
	CustomerID    string
	PeriodLabel   string
	DueDate       time.Time
	ReceiptAmount decimal.Decimal
	PendingAmount decimal.Decimal
	Currency      string
	Status        ReceiptStatus
}
