package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"feedesk/internal/domain"
	"feedesk/internal/service"
)

// MockBillService is a mock implementation of service.BillService.
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) Create(ctx context.Context, input *service.CreateBillInput) (*domain.FeeBill, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeBill), args.Error(1)
}

func (m *MockBillService) Import(ctx context.Context, records []domain.BillRecord, createdBy uuid.UUID) ([]domain.FeeBill, error) {
	args := m.Called(ctx, records, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeBill), args.Error(1)
}

func (m *MockBillService) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeBill), args.Error(1)
}

func (m *MockBillService) List(ctx context.Context, filters *domain.BillFilters, offset, limit int) ([]domain.FeeBill, int, error) {
	args := m.Called(ctx, filters, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.FeeBill), args.Int(1), args.Error(2)
}

func (m *MockBillService) Update(ctx context.Context, id uuid.UUID, input *service.UpdateBillInput) (*domain.FeeBill, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeBill), args.Error(1)
}

func (m *MockBillService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBillService) DeriveItems(ctx context.Context, classID uuid.UUID) (domain.FeeItemList, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.FeeItemList), args.Error(1)
}

func (m *MockBillService) RecordPayment(ctx context.Context, input *service.RecordPaymentInput) (*domain.FeeBill, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeBill), args.Error(1)
}

func (m *MockBillService) ListPayments(ctx context.Context, billID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
