package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the immutable ledger entry recording how a receipt's balance
// changed. It carries the raw submitted amount and currency, the exchange
// rate applied, and the receipt's pending balance before and after the
// payment. Payments are never updated or deleted.
type Payment struct {
	PaymentID             string          `json:"paymentID"` // Primary Key (UUID)
	ReceiptID             string          `json:"receiptID"`
	CustomerID            string          `json:"customerID"`
	PaymentDate           time.Time       `json:"paymentDate"`
	Amount                decimal.Decimal `json:"amount"` // Raw amount as submitted by the caller
	PaymentCurrency       CurrencyCode    `json:"paymentCurrency"`
	ExchangeRate          decimal.Decimal `json:"exchangeRate"`
	PreviousPendingAmount decimal.Decimal `json:"previousPendingAmount"`
	NewPendingAmount      decimal.Decimal `json:"newPendingAmount"`
	PaymentStatus         ReceiptStatus   `json:"paymentStatus"` // Receipt status resulting from this payment
}
