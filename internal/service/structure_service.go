package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"feedesk/internal/billing"
	"feedesk/internal/domain"
	"feedesk/internal/port"
)

// StructureInput is the DTO for creating or updating a fee structure.
type StructureInput struct {
	ClassID        uuid.UUID
	RecurringItems domain.FeeItemList
	OneTimeItems   domain.FeeItemList
	Status         domain.StructureStatus
}

// StructureService manages per-class fee structures.
type StructureService interface {
	Create(ctx context.Context, input *StructureInput) (*domain.FeeStructure, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeStructure, error)
	GetByClass(ctx context.Context, classID uuid.UUID) (*domain.FeeStructure, error)
	List(ctx context.Context, offset, limit int) ([]domain.FeeStructure, int, error)
	Update(ctx context.Context, id uuid.UUID, input *StructureInput) (*domain.FeeStructure, error)
}

type structureService struct {
	structureRepo port.FeeStructureRepository
	classRepo     port.ClassRepository
}

// NewStructureService creates a new StructureService implementation.
func NewStructureService(structureRepo port.FeeStructureRepository, classRepo port.ClassRepository) StructureService {
	return &structureService{structureRepo: structureRepo, classRepo: classRepo}
}

// validateItems rejects items with no fee head, negative amounts, or an
// unknown frequency on a recurring item.
func validateItems(items domain.FeeItemList, recurring bool) error {
	for _, it := range items {
		if it.FeeHead == "" {
			return domain.ErrInvalidFeeItem
		}
		if it.Amount < 0 {
			return domain.ErrInvalidFeeItem
		}
		if recurring && it.Frequency != "" && !domain.ValidFrequencies[it.Frequency] {
			return domain.ErrInvalidFeeItem
		}
	}
	return nil
}

// normalize runs the input through the billing normalizer so stored
// structures always carry defaulted frequencies and a total recomputed
// from the items.
func (s *structureService) normalize(ctx context.Context, id uuid.UUID, input *StructureInput) (*domain.FeeStructure, error) {
	if err := validateItems(input.RecurringItems, true); err != nil {
		return nil, err
	}
	if err := validateItems(input.OneTimeItems, false); err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, input.ClassID)
	if err != nil {
		return nil, err
	}

	structure := billing.NormalizeStructure(domain.StructureRecord{
		ID:             id,
		ClassID:        input.ClassID,
		ClassName:      class.Name,
		RecurringItems: assignItemIDs(input.RecurringItems),
		OneTimeItems:   assignItemIDs(input.OneTimeItems),
		Status:         input.Status,
	})
	return &structure, nil
}

func assignItemIDs(items domain.FeeItemList) domain.FeeItemList {
	out := make(domain.FeeItemList, 0, len(items))
	for _, it := range items {
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		out = append(out, it)
	}
	return out
}

func (s *structureService) Create(ctx context.Context, input *StructureInput) (*domain.FeeStructure, error) {
	structure, err := s.normalize(ctx, uuid.New(), input)
	if err != nil {
		return nil, err
	}
	if err := s.structureRepo.Create(ctx, structure); err != nil {
		return nil, err
	}
	return structure, nil
}

func (s *structureService) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeStructure, error) {
	return s.structureRepo.GetByID(ctx, id)
}

func (s *structureService) GetByClass(ctx context.Context, classID uuid.UUID) (*domain.FeeStructure, error) {
	return s.structureRepo.GetByClass(ctx, classID)
}

func (s *structureService) List(ctx context.Context, offset, limit int) ([]domain.FeeStructure, int, error) {
	return s.structureRepo.List(ctx, offset, limit)
}

func (s *structureService) Update(ctx context.Context, id uuid.UUID, input *StructureInput) (*domain.FeeStructure, error) {
	existing, err := s.structureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.ClassID != existing.ClassID {
		// A structure stays bound to its class; re-keying would detach
		// the lookup used by bill derivation.
		return nil, fmt.Errorf("structureService.Update: %w", domain.ErrInvalidFeeItem)
	}

	structure, err := s.normalize(ctx, id, input)
	if err != nil {
		return nil, err
	}
	structure.CreatedAt = existing.CreatedAt
	if err := s.structureRepo.Update(ctx, structure); err != nil {
		return nil, err
	}
	return structure, nil
}
