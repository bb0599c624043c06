package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors the payments table. Rows are insert-only.
type Payment struct {
	PaymentID             string
	ReceiptID             string
	CustomerID            string
	PaymentDate           time.Time
	Amount                decimal.Decimal
	PaymentCurrency       string
	ExchangeRate          decimal.Decimal
	PreviousPendingAmount decimal.Decimal
	NewPendingAmount      decimal.Decimal
	PaymentStatus         ReceiptStatus
}
