package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"feedesk/internal/domain"
)

// MockFeeStructureRepo is a mock implementation of port.FeeStructureRepository.
type MockFeeStructureRepo struct {
	mock.Mock
}

func (m *MockFeeStructureRepo) Create(ctx context.Context, structure *domain.FeeStructure) error {
	args := m.Called(ctx, structure)
	return args.Error(0)
}

func (m *MockFeeStructureRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeStructure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeStructure), args.Error(1)
}

func (m *MockFeeStructureRepo) GetByClass(ctx context.Context, classID uuid.UUID) (*domain.FeeStructure, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeStructure), args.Error(1)
}

func (m *MockFeeStructureRepo) List(ctx context.Context, offset, limit int) ([]domain.FeeStructure, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.FeeStructure), args.Int(1), args.Error(2)
}

func (m *MockFeeStructureRepo) ListActive(ctx context.Context) ([]domain.FeeStructure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeStructure), args.Error(1)
}

func (m *MockFeeStructureRepo) Update(ctx context.Context, structure *domain.FeeStructure) error {
	args := m.Called(ctx, structure)
	return args.Error(0)
}
