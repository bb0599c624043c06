package mapping

import (
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	"github.com/payservice/receipt_payments_app/internal/models"
)

// ToDomainService converts a model Service to a domain Service
func ToDomainService(m models.Service) domain.Service {
	return domain.Service{
		ServiceID:   m.ServiceID,
		CustomerID:  m.CustomerID,
		ServiceName: m.ServiceName,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainServiceSlice converts a slice of model Services to domain Services
func ToDomainServiceSlice(ms []models.Service) []domain.Service {
	ds := make([]domain.Service, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainService(m)
	}
	return ds
}
