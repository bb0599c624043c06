package mapping

import (
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	"github.com/payservice/receipt_payments_app/internal/models"
)

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:     m.ReceiptID,
		ReceiptNumber: m.ReceiptNumber,
		ServiceID:     m.ServiceID,
		CustomerID:    m.CustomerID,
		PeriodLabel:   m.PeriodLabel,
		DueDate:       m.DueDate,
		ReceiptAmount: m.ReceiptAmount,
		PendingAmount: m.PendingAmount,
		Currency:      domain.CurrencyCode(m.Currency),
		Status:        domain.ReceiptStatus(m.Status),
	}
}

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:     d.ReceiptID,
		ReceiptNumber: d.ReceiptNumber,
		ServiceID:     d.ServiceID,
		CustomerID:    d.CustomerID,
		PeriodLabel:   d.PeriodLabel,
		DueDate:       d.DueDate,
		ReceiptAmount: d.ReceiptAmount,
		PendingAmount: d.PendingAmount,
		Currency:      string(d.Currency),
		Status:        models.ReceiptStatus(d.Status),
	}
}

// ToDomainReceiptSlice converts a slice of model Receipts to domain Receipts
func ToDomainReceiptSlice(ms []models.Receipt) []domain.Receipt {
	ds := make([]domain.Receipt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceipt(m)
	}
	return ds
}
