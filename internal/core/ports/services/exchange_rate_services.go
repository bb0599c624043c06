package services

import (
	"context"

	"github.com/payservice/receipt_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateSvcFacade resolves conversion rates between supported
// currencies. The boundary is an interface so a live rate provider can be
// plugged in later without touching the registration workflow.
type ExchangeRateSvcFacade interface {
	// GetRate returns the fixed rate applied when converting between the
	// two currencies. Identity (1) when the codes are equal.
	GetRate(ctx context.Context, from, to domain.CurrencyCode) (decimal.Decimal, error)

	// Convert translates amount from one currency to the other and returns
	// the converted amount together with the rate that was applied.
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, decimal.Decimal, error)
}
