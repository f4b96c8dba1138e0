package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"feedesk/internal/domain"
	"feedesk/internal/port"
)

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

// Record inserts the payment row and the bill's recomputed payment fields
// atomically. Either both writes land or neither does; the caller only
// applies the new balance to its view after this returns nil.
func (r *paymentRepo) Record(ctx context.Context, payment *domain.Payment, bill *domain.FeeBill) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("paymentRepo.Record begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO payments (
			id, bill_id, amount, method, reference,
			recorded_by, payment_date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		payment.ID, payment.BillID, payment.Amount, payment.Method, payment.Reference,
		payment.RecordedBy, payment.PaymentDate, payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Record insert: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE fee_bills SET
			paid_amount = $1, balance_amount = $2, status = $3, updated_at = $4
		 WHERE id = $5`,
		bill.PaidAmount, bill.BalanceAmount, bill.Status, bill.UpdatedAt, bill.ID)
	if err != nil {
		return fmt.Errorf("paymentRepo.Record update bill: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrBillNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("paymentRepo.Record commit: %w", err)
	}
	return nil
}

func (r *paymentRepo) ListByBill(ctx context.Context, billID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE bill_id = $1 ORDER BY payment_date, created_at", billID)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByBill: %w", err)
	}
	return payments, nil
}
