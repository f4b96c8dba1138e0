package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"feedesk/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendPaymentReceipt(ctx context.Context, toEmail, toName string, bill *domain.FeeBill, payment *domain.Payment) error {
	args := m.Called(ctx, toEmail, toName, bill, payment)
	return args.Error(0)
}

func (m *MockEmailSender) SendOverdueReminder(ctx context.Context, toEmail, toName string, bill *domain.FeeBill) error {
	args := m.Called(ctx, toEmail, toName, bill)
	return args.Error(0)
}
