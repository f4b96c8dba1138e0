package port

import (
	"context"

	"github.com/google/uuid"

	"feedesk/internal/domain"
)

// ClassRepository persists school classes.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.SchoolClass) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SchoolClass, error)
	List(ctx context.Context, offset, limit int) ([]domain.SchoolClass, int, error)
}
