package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"feedesk/internal/domain"
)

// MockClassRepo is a mock implementation of port.ClassRepository.
type MockClassRepo struct {
	mock.Mock
}

func (m *MockClassRepo) Create(ctx context.Context, class *domain.SchoolClass) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SchoolClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchoolClass), args.Error(1)
}

func (m *MockClassRepo) List(ctx context.Context, offset, limit int) ([]domain.SchoolClass, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SchoolClass), args.Int(1), args.Error(2)
}
