package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"feedesk/internal/domain"
)

// MockFeeBillRepo is a mock implementation of port.FeeBillRepository.
type MockFeeBillRepo struct {
	mock.Mock
}

func (m *MockFeeBillRepo) Create(ctx context.Context, bill *domain.FeeBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockFeeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeBill), args.Error(1)
}

func (m *MockFeeBillRepo) List(ctx context.Context, filters *domain.BillFilters, offset, limit int) ([]domain.FeeBill, int, error) {
	args := m.Called(ctx, filters, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.FeeBill), args.Int(1), args.Error(2)
}

func (m *MockFeeBillRepo) ListAll(ctx context.Context, filters *domain.BillFilters) ([]domain.FeeBill, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeBill), args.Error(1)
}

func (m *MockFeeBillRepo) Update(ctx context.Context, bill *domain.FeeBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockFeeBillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
