package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"feedesk/internal/domain"
	"feedesk/internal/port"
)

type classRepo struct {
	db *sqlx.DB
}

// NewClassRepo creates a new PostgreSQL-backed ClassRepository.
func NewClassRepo(db *sqlx.DB) port.ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *domain.SchoolClass) error {
	now := time.Now().UTC()
	class.CreatedAt = now
	class.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO classes (id, name, section, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		class.ID, class.Name, class.Section, class.CreatedAt, class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("classRepo.Create: %w", err)
	}
	return nil
}

func (r *classRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SchoolClass, error) {
	var class domain.SchoolClass
	err := r.db.GetContext(ctx, &class, "SELECT * FROM classes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("classRepo.GetByID: %w", err)
	}
	return &class, nil
}

func (r *classRepo) List(ctx context.Context, offset, limit int) ([]domain.SchoolClass, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM classes"); err != nil {
		return nil, 0, fmt.Errorf("classRepo.List count: %w", err)
	}

	var classes []domain.SchoolClass
	err := r.db.SelectContext(ctx, &classes,
		"SELECT * FROM classes ORDER BY name, section LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("classRepo.List: %w", err)
	}
	return classes, total, nil
}
