package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	portsrepo "github.com/payservice/receipt_payments_app/internal/core/ports/repositories"
	"github.com/payservice/receipt_payments_app/internal/models"
	"github.com/payservice/receipt_payments_app/internal/utils/mapping"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, names, lastname, email, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		WHERE customer_id = $1;
	`
	var modelCust models.Customer
	err := r.Pool.QueryRow(ctx, query, customerID).Scan(
		&modelCust.CustomerID,
		&modelCust.Names,
		&modelCust.Lastname,
		&modelCust.Email,
		&modelCust.CreatedAt,
		&modelCust.CreatedBy,
		&modelCust.LastUpdatedAt,
		&modelCust.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}

	domainCust := mapping.ToDomainCustomer(modelCust)
	return &domainCust, nil
}
