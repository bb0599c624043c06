package services

import (
	"context"
	"fmt"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// exchangeRateService resolves conversion rates from a static table keyed
// by ordered currency pair. Adding a currency means adding table entries,
// not control flow. A live rate provider would replace this implementation
// behind the same facade.
type exchangeRateService struct {
	rates map[string]decimal.Decimal
}

// NewExchangeRateService creates the static rate table service.
func NewExchangeRateService() portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rates: map[string]decimal.Decimal{
			pairKey(domain.CurrencyUSD, domain.CurrencyPEN): decimal.RequireFromString("3.50"),
		},
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func pairKey(from, to domain.CurrencyCode) string {
	return string(from) + "_" + string(to)
}

// GetRate returns the fixed rate for the pair. The same rate figure serves
// both directions: the direct direction multiplies by it, the inverse
// direction divides by it.
func (s *exchangeRateService) GetRate(_ context.Context, from, to domain.CurrencyCode) (decimal.Decimal, error) {
	if from == "" || to == "" {
		return decimal.Zero, fmt.Errorf("%w: currency cannot be null", apperrors.ErrValidation)
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	if rate, ok := s.rates[pairKey(from, to)]; ok {
		return rate, nil
	}
	if rate, ok := s.rates[pairKey(to, from)]; ok {
		return rate, nil
	}
	return decimal.Zero, fmt.Errorf("%w: exchange rate not defined for pair %s/%s", apperrors.ErrValidation, from, to)
}

// Convert translates amount between currencies. Same currency passes the
// amount through at rate 1. The direct pair multiplies; the inverse pair
// divides rounded half-up to 2 decimal places.
func (s *exchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, decimal.Decimal, error) {
	rate, err := s.GetRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	if from == to {
		return amount, rate, nil
	}
	if _, ok := s.rates[pairKey(from, to)]; ok {
		return amount.Mul(rate), rate, nil
	}
	return amount.DivRound(rate, 2), rate, nil
}
