package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"feedesk/internal/domain"
	"feedesk/internal/port"
)

type feeBillRepo struct {
	db *sqlx.DB
}

// NewFeeBillRepo creates a new PostgreSQL-backed FeeBillRepository.
func NewFeeBillRepo(db *sqlx.DB) port.FeeBillRepository {
	return &feeBillRepo{db: db}
}

func (r *feeBillRepo) Create(ctx context.Context, bill *domain.FeeBill) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO fee_bills (
			id, student_id, student_name, class_id, class_name,
			bill_date, due_date, fee_items,
			total_amount, paid_amount, balance_amount, status,
			created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15
		)`,
		bill.ID, bill.StudentID, bill.StudentName, bill.ClassID, bill.ClassName,
		bill.BillDate, bill.DueDate, bill.FeeItems,
		bill.TotalAmount, bill.PaidAmount, bill.BalanceAmount, bill.Status,
		bill.CreatedBy, bill.CreatedAt, bill.UpdatedAt)
	if err != nil {
		return fmt.Errorf("feeBillRepo.Create: %w", err)
	}
	return nil
}

func (r *feeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeBill, error) {
	var bill domain.FeeBill
	err := r.db.GetContext(ctx, &bill, "SELECT * FROM fee_bills WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("feeBillRepo.GetByID: %w", err)
	}
	return &bill, nil
}

// buildBillWhere constructs a dynamic WHERE clause for fee_bills queries.
func buildBillWhere(filters *domain.BillFilters) (clause string, args []interface{}) {
	clause = "WHERE 1=1"
	argN := 1
	if filters == nil {
		return clause, args
	}
	if filters.StudentID != nil {
		clause += fmt.Sprintf(" AND student_id = $%d", argN)
		args = append(args, *filters.StudentID)
		argN++
	}
	if filters.ClassID != nil {
		clause += fmt.Sprintf(" AND class_id = $%d", argN)
		args = append(args, *filters.ClassID)
		argN++
	}
	if filters.Status != "" {
		clause += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, filters.Status)
		argN++
	}
	if filters.From != nil {
		clause += fmt.Sprintf(" AND bill_date >= $%d", argN)
		args = append(args, *filters.From)
		argN++
	}
	if filters.To != nil {
		clause += fmt.Sprintf(" AND bill_date <= $%d", argN)
		args = append(args, *filters.To)
		argN++
	}
	return clause, args
}

func (r *feeBillRepo) List(ctx context.Context, filters *domain.BillFilters, offset, limit int) ([]domain.FeeBill, int, error) {
	where, args := buildBillWhere(filters)

	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM fee_bills "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("feeBillRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM fee_bills %s ORDER BY bill_date DESC, created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var bills []domain.FeeBill
	if err := r.db.SelectContext(ctx, &bills, query, args...); err != nil {
		return nil, 0, fmt.Errorf("feeBillRepo.List: %w", err)
	}
	return bills, total, nil
}

func (r *feeBillRepo) ListAll(ctx context.Context, filters *domain.BillFilters) ([]domain.FeeBill, error) {
	where, args := buildBillWhere(filters)

	var bills []domain.FeeBill
	query := "SELECT * FROM fee_bills " + where + " ORDER BY bill_date DESC, created_at DESC"
	if err := r.db.SelectContext(ctx, &bills, query, args...); err != nil {
		return nil, fmt.Errorf("feeBillRepo.ListAll: %w", err)
	}
	return bills, nil
}

func (r *feeBillRepo) Update(ctx context.Context, bill *domain.FeeBill) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE fee_bills SET
			student_id = $1, student_name = $2, class_id = $3, class_name = $4,
			bill_date = $5, due_date = $6, fee_items = $7,
			total_amount = $8, paid_amount = $9, balance_amount = $10, status = $11,
			updated_at = $12
		 WHERE id = $13`,
		bill.StudentID, bill.StudentName, bill.ClassID, bill.ClassName,
		bill.BillDate, bill.DueDate, bill.FeeItems,
		bill.TotalAmount, bill.PaidAmount, bill.BalanceAmount, bill.Status,
		bill.UpdatedAt, bill.ID)
	if err != nil {
		return fmt.Errorf("feeBillRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrBillNotFound
	}
	return nil
}

func (r *feeBillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM fee_bills WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("feeBillRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrBillNotFound
	}
	return nil
}
