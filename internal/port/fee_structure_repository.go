package port

import (
	"context"

	"github.com/google/uuid"

	"feedesk/internal/domain"
)

// FeeStructureRepository persists per-class fee structures.
// A class has at most one structure; GetByClass is the lookup used by
// bill derivation.
type FeeStructureRepository interface {
	Create(ctx context.Context, structure *domain.FeeStructure) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeStructure, error)
	GetByClass(ctx context.Context, classID uuid.UUID) (*domain.FeeStructure, error)
	List(ctx context.Context, offset, limit int) ([]domain.FeeStructure, int, error)
	ListActive(ctx context.Context) ([]domain.FeeStructure, error)
	Update(ctx context.Context, structure *domain.FeeStructure) error
}
