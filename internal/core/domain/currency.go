package domain

import "strings"

// CurrencyCode identifies a supported payment currency.
type CurrencyCode string

const (
	CurrencyPEN CurrencyCode = "PEN"
	CurrencyUSD CurrencyCode = "USD"
)

// SupportedCurrencies is the fixed allow-list of currencies a payment may be
// submitted in.
var SupportedCurrencies = []CurrencyCode{CurrencyPEN, CurrencyUSD}

// NormalizeCurrency upper-cases a raw currency string into a CurrencyCode.
// It does not validate membership; use IsSupported for that.
func NormalizeCurrency(raw string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsSupported reports whether the code is on the allow-list.
func (c CurrencyCode) IsSupported() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}
