package services

import (
	portsrepo "github.com/payservice/receipt_payments_app/internal/core/ports/repositories"
	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Exchange rates first since payment registration depends on them.
	container.ExchangeRate = NewExchangeRateService()

	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		repos.ReceiptRepo,
		repos.CustomerRepo,
		repos.ServiceRepo,
		container.ExchangeRate,
	)
	container.Receipt = NewReceiptService(repos.ReceiptRepo, repos.CustomerRepo, repos.ServiceRepo)
	container.Service = NewServiceService(repos.ServiceRepo, repos.ReceiptRepo, repos.CustomerRepo)

	return container
}
