package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"feedesk/internal/domain"
	"feedesk/internal/port"
)

type feeStructureRepo struct {
	db *sqlx.DB
}

// NewFeeStructureRepo creates a new PostgreSQL-backed FeeStructureRepository.
func NewFeeStructureRepo(db *sqlx.DB) port.FeeStructureRepository {
	return &feeStructureRepo{db: db}
}

func (r *feeStructureRepo) Create(ctx context.Context, structure *domain.FeeStructure) error {
	now := time.Now().UTC()
	structure.CreatedAt = now
	structure.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO fee_structures (
			id, class_id, class_name, recurring_items, one_time_items,
			total_amount, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		structure.ID, structure.ClassID, structure.ClassName,
		structure.RecurringItems, structure.OneTimeItems,
		structure.TotalAmount, structure.Status,
		structure.CreatedAt, structure.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "class_id") {
			return domain.ErrDuplicateStructure
		}
		return fmt.Errorf("feeStructureRepo.Create: %w", err)
	}
	return nil
}

func (r *feeStructureRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeStructure, error) {
	var structure domain.FeeStructure
	err := r.db.GetContext(ctx, &structure, "SELECT * FROM fee_structures WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStructureNotFound
		}
		return nil, fmt.Errorf("feeStructureRepo.GetByID: %w", err)
	}
	return &structure, nil
}

func (r *feeStructureRepo) GetByClass(ctx context.Context, classID uuid.UUID) (*domain.FeeStructure, error) {
	var structure domain.FeeStructure
	err := r.db.GetContext(ctx, &structure,
		"SELECT * FROM fee_structures WHERE class_id = $1", classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStructureNotFound
		}
		return nil, fmt.Errorf("feeStructureRepo.GetByClass: %w", err)
	}
	return &structure, nil
}

func (r *feeStructureRepo) List(ctx context.Context, offset, limit int) ([]domain.FeeStructure, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM fee_structures"); err != nil {
		return nil, 0, fmt.Errorf("feeStructureRepo.List count: %w", err)
	}

	var structures []domain.FeeStructure
	err := r.db.SelectContext(ctx, &structures,
		"SELECT * FROM fee_structures ORDER BY class_name LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("feeStructureRepo.List: %w", err)
	}
	return structures, total, nil
}

func (r *feeStructureRepo) ListActive(ctx context.Context) ([]domain.FeeStructure, error) {
	var structures []domain.FeeStructure
	err := r.db.SelectContext(ctx, &structures,
		"SELECT * FROM fee_structures WHERE status = $1 ORDER BY class_name",
		domain.StructureActive)
	if err != nil {
		return nil, fmt.Errorf("feeStructureRepo.ListActive: %w", err)
	}
	return structures, nil
}

func (r *feeStructureRepo) Update(ctx context.Context, structure *domain.FeeStructure) error {
	structure.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE fee_structures SET
			class_name = $1, recurring_items = $2, one_time_items = $3,
			total_amount = $4, status = $5, updated_at = $6
		 WHERE id = $7`,
		structure.ClassName, structure.RecurringItems, structure.OneTimeItems,
		structure.TotalAmount, structure.Status, structure.UpdatedAt,
		structure.ID)
	if err != nil {
		return fmt.Errorf("feeStructureRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStructureNotFound
	}
	return nil
}
