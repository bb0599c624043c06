package mapping

import (
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	"github.com/payservice/receipt_payments_app/internal/models"
)

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Names:       m.Names,
		Lastname:    m.Lastname,
		Email:       m.Email,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Names:       d.Names,
		Lastname:    d.Lastname,
		Email:       d.Email,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
