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

type studentRepo struct {
	db *sqlx.DB
}

// NewStudentRepo creates a new PostgreSQL-backed StudentRepository.
func NewStudentRepo(db *sqlx.DB) port.StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *domain.Student) error {
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (
			id, admission_no, full_name, class_id,
			guardian_name, guardian_email, guardian_phone,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		student.ID, student.AdmissionNo, student.FullName, student.ClassID,
		student.GuardianName, student.GuardianEmail, student.GuardianPhone,
		student.IsActive, student.CreatedAt, student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("studentRepo.Create: %w", err)
	}
	return nil
}

func (r *studentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	var student domain.Student
	err := r.db.GetContext(ctx, &student, "SELECT * FROM students WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("studentRepo.GetByID: %w", err)
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, classID *uuid.UUID, offset, limit int) ([]domain.Student, int, error) {
	where := ""
	args := []interface{}{}
	if classID != nil {
		where = "WHERE class_id = $1"
		args = append(args, *classID)
	}

	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM students "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("studentRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM students %s ORDER BY full_name LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var students []domain.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, fmt.Errorf("studentRepo.List: %w", err)
	}
	return students, total, nil
}
