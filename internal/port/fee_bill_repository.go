package port

import (
	"context"

	"github.com/google/uuid"

	"feedesk/internal/domain"
)

// FeeBillRepository persists fee bills.
type FeeBillRepository interface {
	Create(ctx context.Context, bill *domain.FeeBill) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeBill, error)
	List(ctx context.Context, filters *domain.BillFilters, offset, limit int) ([]domain.FeeBill, int, error)
	// ListAll returns the full filtered bill set without pagination; the
	// reporting layer folds aggregates from this authoritative list.
	ListAll(ctx context.Context, filters *domain.BillFilters) ([]domain.FeeBill, error)
	Update(ctx context.Context, bill *domain.FeeBill) error
	Delete(ctx context.Context, id uuid.UUID) error
}
