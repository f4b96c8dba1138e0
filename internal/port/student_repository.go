package port

import (
	"context"

	"github.com/google/uuid"

	"feedesk/internal/domain"
)

// StudentRepository persists students.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	List(ctx context.Context, classID *uuid.UUID, offset, limit int) ([]domain.Student, int, error)
}
