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

const serviceColumns = `service_id, customer_id, service_name, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxServiceRepository struct {
	BaseRepository
}

// newPgxServiceRepository creates a new repository for service data.
func newPgxServiceRepository(pool *pgxpool.Pool) portsrepo.ServiceRepositoryFacade {
	return &PgxServiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ServiceRepositoryFacade = (*PgxServiceRepository)(nil)

func scanService(row pgx.CollectableRow) (models.Service, error) {
	var svc models.Service
	err := row.Scan(
		&svc.ServiceID,
		&svc.CustomerID,
		&svc.ServiceName,
		&svc.Description,
		&svc.IsActive,
		&svc.CreatedAt,
		&svc.CreatedBy,
		&svc.LastUpdatedAt,
		&svc.LastUpdatedBy,
	)
	return svc, err
}

// FindServiceByID retrieves a service by its ID.
func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := fmt.Sprintf(`SELECT %s FROM services WHERE service_id = $1;`, serviceColumns)

	var modelSvc models.Service
	err := r.Pool.QueryRow(ctx, query, serviceID).Scan(
		&modelSvc.ServiceID,
		&modelSvc.CustomerID,
		&modelSvc.ServiceName,
		&modelSvc.Description,
		&modelSvc.IsActive,
		&modelSvc.CreatedAt,
		&modelSvc.CreatedBy,
		&modelSvc.LastUpdatedAt,
		&modelSvc.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID %s: %w", serviceID, err)
	}

	domainSvc := mapping.ToDomainService(modelSvc)
	return &domainSvc, nil
}

// FindServicesByCustomer retrieves all services owned by a customer.
func (r *PgxServiceRepository) FindServicesByCustomer(ctx context.Context, customerID string) ([]domain.Service, error) {
	query := fmt.Sprintf(`SELECT %s FROM services WHERE customer_id = $1 ORDER BY service_name;`, serviceColumns)

	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query services for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	modelServices, err := pgx.CollectRows(rows, scanService)
	if err != nil {
		return nil, fmt.Errorf("failed to scan services: %w", err)
	}

	return mapping.ToDomainServiceSlice(modelServices), nil
}

// FindServicesByIDs retrieves multiple services at once, keyed by ID.
func (r *PgxServiceRepository) FindServicesByIDs(ctx context.Context, serviceIDs []string) (map[string]domain.Service, error) {
	if len(serviceIDs) == 0 {
		return map[string]domain.Service{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM services WHERE service_id = ANY($1);`, serviceColumns)

	rows, err := r.Pool.Query(ctx, query, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query services by IDs: %w", err)
	}
	defer rows.Close()

	modelServices, err := pgx.CollectRows(rows, scanService)
	if err != nil {
		return nil, fmt.Errorf("failed to scan services: %w", err)
	}

	result := make(map[string]domain.Service, len(modelServices))
	for _, m := range modelServices {
		result[m.ServiceID] = mapping.ToDomainService(m)
	}
	return result, nil
}
