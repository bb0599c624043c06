package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/payservice/receipt_payments_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo: newPgxCustomerRepository(dbPool),
		ServiceRepo:  newPgxServiceRepository(dbPool),
		ReceiptRepo:  newPgxReceiptRepository(dbPool),
		PaymentRepo:  newPgxPaymentRepository(dbPool),
	}
}
