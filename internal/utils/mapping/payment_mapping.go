package mapping

import (
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	"github.com/payservice/receipt_payments_app/internal/models"
)

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:             m.PaymentID,
		ReceiptID:             m.ReceiptID,
		CustomerID:            m.CustomerID,
		PaymentDate:           m.PaymentDate,
		Amount:                m.Amount,
		PaymentCurrency:       domain.CurrencyCode(m.PaymentCurrency),
		ExchangeRate:          m.ExchangeRate,
		PreviousPendingAmount: m.PreviousPendingAmount,
		NewPendingAmount:      m.NewPendingAmount,
		PaymentStatus:         domain.ReceiptStatus(m.PaymentStatus),
	}
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:             d.PaymentID,
		ReceiptID:             d.ReceiptID,
		CustomerID:            d.CustomerID,
		PaymentDate:           d.PaymentDate,
		Amount:                d.Amount,
		PaymentCurrency:       string(d.PaymentCurrency),
		ExchangeRate:          d.ExchangeRate,
		PreviousPendingAmount: d.PreviousPendingAmount,
		NewPendingAmount:      d.NewPendingAmount,
		PaymentStatus:         models.ReceiptStatus(d.PaymentStatus),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
