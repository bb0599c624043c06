package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	portsrepo "github.com/payservice/receipt_payments_app/internal/core/ports/repositories"
	"github.com/payservice/receipt_payments_app/internal/models"
	"github.com/payservice/receipt_payments_app/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SavePayment applies convertedAmount against the payment's receipt inside a
// single transaction. The receipt row is locked with FOR UPDATE so two
// concurrent registrations against the same receipt serialize here; the
// pending balance and status are re-checked against the locked row, not the
// snapshot the caller validated.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, convertedAmount decimal.Decimal) (*domain.Payment, *domain.Receipt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	// 1. Lock the receipt row and read its current state.
	lockQuery := fmt.Sprintf(`SELECT %s FROM receipts WHERE receipt_id = $1 FOR UPDATE;`, receiptColumns)

	var modelRec models.Receipt
	err = tx.QueryRow(ctx, lockQuery, payment.ReceiptID).Scan(
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
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to lock receipt %s: %w", payment.ReceiptID, err)
	}

	// 2. Re-validate against the locked state.
	if modelRec.Status == models.ReceiptPaid {
		return nil, nil, fmt.Errorf("%w: receipt is already paid", apperrors.ErrValidation)
	}
	if convertedAmount.GreaterThan(modelRec.PendingAmount) {
		return nil, nil, fmt.Errorf("%w: converted amount %s exceeds pending %s",
			apperrors.ErrOverpayment, convertedAmount.String(), modelRec.PendingAmount.String())
	}

	// 3. Compute the new balance and status under the lock.
	newPending := modelRec.PendingAmount.Sub(convertedAmount)
	newStatus := models.ReceiptPartiallyPaid
	if newPending.IsZero() {
		newStatus = models.ReceiptPaid
	}

	modelPayment := mapping.ToModelPayment(payment)
	modelPayment.PreviousPendingAmount = modelRec.PendingAmount
	modelPayment.NewPendingAmount = newPending
	modelPayment.PaymentStatus = newStatus

	// 4. Write both sides of the mutation.
	updateQuery := `
		UPDATE receipts
		SET pending_amount = $2, receipt_status = $3
		WHERE receipt_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery, modelRec.ReceiptID, newPending, newStatus)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to update receipt "+modelRec.ReceiptID, err)
	}

	insertQuery := `
		INSERT INTO payments (
			payment_id, receipt_id, customer_id, payment_date,
			amount, payment_currency, exchange_rate,
			previous_pending_amount, new_pending_amount, payment_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelPayment.PaymentID,
		modelPayment.ReceiptID,
		modelPayment.CustomerID,
		modelPayment.PaymentDate,
		modelPayment.Amount,
		modelPayment.PaymentCurrency,
		modelPayment.ExchangeRate,
		modelPayment.PreviousPendingAmount,
		modelPayment.NewPendingAmount,
		modelPayment.PaymentStatus,
	)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to insert payment "+modelPayment.PaymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	modelRec.PendingAmount = newPending
	modelRec.Status = newStatus

	savedPayment := mapping.ToDomainPayment(modelPayment)
	savedReceipt := mapping.ToDomainReceipt(modelRec)
	return &savedPayment, &savedReceipt, nil
}

// FindPaymentsByCustomer retrieves all payments made by a customer, most
// recent first.
func (r *PgxPaymentRepository) FindPaymentsByCustomer(ctx context.Context, customerID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, receipt_id, customer_id, payment_date,
		       amount, payment_currency, exchange_rate,
		       previous_pending_amount, new_pending_amount, payment_status
		FROM payments
		WHERE customer_id = $1
		ORDER BY payment_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		var p models.Payment
		err := row.Scan(
			&p.PaymentID,
			&p.ReceiptID,
			&p.CustomerID,
			&p.PaymentDate,
			&p.Amount,
			&p.PaymentCurrency,
			&p.ExchangeRate,
			&p.PreviousPendingAmount,
			&p.NewPendingAmount,
			&p.PaymentStatus,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}
