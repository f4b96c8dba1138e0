package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"feedesk/internal/domain"
)

// MockPaymentRepo is a mock implementation of port.PaymentRepository.
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Record(ctx context.Context, payment *domain.Payment, bill *domain.FeeBill) error {
	args := m.Called(ctx, payment, bill)
	return args.Error(0)
}

func (m *MockPaymentRepo) ListByBill(ctx context.Context, billID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
