package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	portsrepo "github.com/payservice/receipt_payments_app/internal/core/ports/repositories"
	"github.com/payservice/receipt_payments_app/internal/models"
	"github.com/payservice/receipt_payments_app/internal/utils/mapping"
)

const receiptColumns = `receipt_id, receipt_number, service_id, customer_id, period_label, due_date, receipt_amount, pending_amount, currency, receipt_status`

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

func scanReceipt(row pgx.CollectableRow) (models.Receipt, error) {
	var rec models.Receipt
	err := row.Scan(
		&rec.ReceiptID,
		&rec.ReceiptNumber,
		&rec.ServiceID,
		&rec.CustomerID,
		&rec.PeriodLabel,
		&rec.DueDate,
		&rec.ReceiptAmount,
		&rec.PendingAmount,
		&rec.Currency,
		&rec.Status,
	)
	return rec, err
}

// FindReceiptByID retrieves a receipt by its ID.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	query := fmt.Sprintf(`SELECT %s FROM receipts WHERE receipt_id = $1;`, receiptColumns)

	var modelRec models.Receipt
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&modelRec.ReceiptID,
		&modelRec.ReceiptNumber,
		&modelRec.ServiceID,
		&modelRec.CustomerID,
		&modelRec.PeriodLabel,
		&modelRec.DueDate,
		&modelRec.ReceiptAmount,
		&modelRec.PendingAmount,
		&modelRec.Currency,
		&modelRec.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by ID %s: %w", receiptID, err)
	}

	domainRec := mapping.ToDomainReceipt(modelRec)
	return &domainRec, nil
}

// FindReceiptsByServiceAndCustomer retrieves all receipts for a
// service+customer pair, newest due date first.
func (r *PgxReceiptRepository) FindReceiptsByServiceAndCustomer(ctx context.Context, serviceID, customerID string) ([]domain.Receipt, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM receipts
		WHERE service_id = $1 AND customer_id = $2
		ORDER BY due_date DESC;
	`, receiptColumns)

	rows, err := r.Pool.Query(ctx, query, serviceID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts for service %s: %w", serviceID, err)
	}
	defer rows.Close()

	modelReceipts, err := pgx.CollectRows(rows, scanReceipt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts: %w", err)
	}

	return mapping.ToDomainReceiptSlice(modelReceipts), nil
}

// FindReceiptsDueBefore retrieves the receipts of the same service+customer
// pair due strictly before the given date, oldest first.
func (r *PgxReceiptRepository) FindReceiptsDueBefore(ctx context.Context, serviceID, customerID string, dueDate time.Time) ([]domain.Receipt, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM receipts
		WHERE service_id = $1 AND customer_id = $2 AND due_date < $3
		ORDER BY due_date ASC;
	`, receiptColumns)

	rows, err := r.Pool.Query(ctx, query, serviceID, customerID, dueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query earlier receipts for service %s: %w", serviceID, err)
	}
	defer rows.Close()

	modelReceipts, err := pgx.CollectRows(rows, scanReceipt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts: %w", err)
	}

	return mapping.ToDomainReceiptSlice(modelReceipts), nil
}

// FindReceiptsByIDs retrieves multiple receipts at once, keyed by ID.
func (r *PgxReceiptRepository) FindReceiptsByIDs(ctx context.Context, receiptIDs []string) (map[string]domain.Receipt, error) {
	if len(receiptIDs) == 0 {
		return map[string]domain.Receipt{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM receipts WHERE receipt_id = ANY($1);`, receiptColumns)

	rows, err := r.Pool.Query(ctx, query, receiptIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts by IDs: %w", err)
	}
	defer rows.Close()

	modelReceipts, err := pgx.CollectRows(rows, scanReceipt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts: %w", err)
	}

	result := make(map[string]domain.Receipt, len(modelReceipts))
	for _, m := range modelReceipts {
		result[m.ReceiptID] = mapping.ToDomainReceipt(m)
	}
	return result, nil
}
