package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"feedesk/internal/domain"
	"feedesk/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) CollectionSummary(ctx context.Context, filters *domain.BillFilters) (*domain.CollectionSummary, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectionSummary), args.Error(1)
}

func (m *MockReportService) ExportCSV(ctx context.Context, filters *domain.BillFilters) ([]byte, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportService) ArchiveCSV(ctx context.Context, filters *domain.BillFilters) (*service.ArchiveResult, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchiveResult), args.Error(1)
}

func (m *MockReportService) SendOverdueReminders(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
