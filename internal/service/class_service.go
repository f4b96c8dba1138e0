package service

import (
	"context"

	"github.com/google/uuid"

	"feedesk/internal/domain"
	"feedesk/internal/port"
)

// CreateClassInput is the DTO for creating a school class.
type CreateClassInput struct {
	Name    string
	Section string
}

// ClassService manages school classes.
type ClassService interface {
	Create(ctx context.Context, input *CreateClassInput) (*domain.SchoolClass, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SchoolClass, error)
	List(ctx context.Context, offset, limit int) ([]domain.SchoolClass, int, error)
}

type classService struct {
	classRepo port.ClassRepository
}

// NewClassService creates a new ClassService implementation.
func NewClassService(classRepo port.ClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

func (s *classService) Create(ctx context.Context, input *CreateClassInput) (*domain.SchoolClass, error) {
	class := &domain.SchoolClass{
		ID:      uuid.New(),
		Name:    input.Name,
		Section: input.Section,
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *classService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SchoolClass, error) {
	return s.classRepo.GetByID(ctx, id)
}

func (s *classService) List(ctx context.Context, offset, limit int) ([]domain.SchoolClass, int, error) {
	return s.classRepo.List(ctx, offset, limit)
}
