package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedesk/internal/config"
	"feedesk/internal/csvexport"
	"feedesk/internal/domain"
	"feedesk/internal/port"
	"feedesk/internal/service"
	"feedesk/mocks"
)

func testStorageConfig() config.StorageConfig {
	return config.StorageConfig{
		Bucket:        "feedesk-test",
		PresignExpiry: 3600,
	}
}

func TestReportService_CollectionSummary(t *testing.T) {
	future := time.Now().UTC().AddDate(0, 1, 0)
	past := time.Now().UTC().AddDate(0, 0, -3)
	bills := []domain.FeeBill{
		{TotalAmount: 300000, PaidAmount: 300000, BalanceAmount: 0, DueDate: past, Status: domain.BillStatusPaid},
		{TotalAmount: 200000, PaidAmount: 115000, BalanceAmount: 85000, DueDate: future, Status: domain.BillStatusPartial},
		{TotalAmount: 100000, PaidAmount: 85000, BalanceAmount: 15000, DueDate: past, Status: domain.BillStatusPartial},
	}

	billRepo := new(mocks.MockFeeBillRepo)
	billRepo.On("ListAll", mock.Anything, (*domain.BillFilters)(nil)).Return(bills, nil)
	svc := service.NewReportService(billRepo, nil, nil, nil, testStorageConfig())

	summary, err := svc.CollectionSummary(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalBills)
	assert.Equal(t, int64(600000), summary.TotalRevenue)
	assert.Equal(t, int64(500000), summary.TotalCollected)
	assert.Equal(t, int64(100000), summary.TotalOutstanding)
	assert.Equal(t, 83, summary.CollectionRate)
	assert.Equal(t, 1, summary.OverdueBills)
}

func TestReportService_CollectionSummary_EmptySet(t *testing.T) {
	billRepo := new(mocks.MockFeeBillRepo)
	billRepo.On("ListAll", mock.Anything, (*domain.BillFilters)(nil)).Return([]domain.FeeBill{}, nil)
	svc := service.NewReportService(billRepo, nil, nil, nil, testStorageConfig())

	summary, err := svc.CollectionSummary(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalBills)
	assert.Equal(t, 0, summary.CollectionRate)
}

func TestReportService_ExportCSV(t *testing.T) {
	future := time.Now().UTC().AddDate(0, 1, 0)
	bills := []domain.FeeBill{
		{
			ID:            uuid.New(),
			StudentName:   "Asha Rao",
			ClassName:     "Class 5",
			BillDate:      time.Now().UTC(),
			DueDate:       future,
			TotalAmount:   320000,
			PaidAmount:    100000,
			BalanceAmount: 220000,
			Status:        domain.BillStatusPartial,
			FeeItems: domain.FeeItemList{
				{FeeHead: "Tuition Fee", Amount: 250000},
				{FeeHead: "School Tie", Amount: 70000},
			},
		},
	}

	billRepo := new(mocks.MockFeeBillRepo)
	billRepo.On("ListAll", mock.Anything, (*domain.BillFilters)(nil)).Return(bills, nil)
	svc := service.NewReportService(billRepo, nil, nil, nil, testStorageConfig())

	data, err := svc.ExportCSV(context.Background(), nil)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, csvexport.BOM))

	body := string(data)
	assert.Contains(t, body, "Student Name")
	assert.Contains(t, body, "Asha Rao")
	assert.Contains(t, body, "Tuition Fee; School Tie")
	assert.Contains(t, body, "3200.00")
	assert.Contains(t, body, "2200.00")

	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Len(t, lines, 2)
}

func TestReportService_ArchiveCSV(t *testing.T) {
	billRepo := new(mocks.MockFeeBillRepo)
	billRepo.On("ListAll", mock.Anything, (*domain.BillFilters)(nil)).Return([]domain.FeeBill{}, nil)

	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "feedesk-test" &&
			strings.HasPrefix(in.Key, "reports/fees/") &&
			in.ContentType == "text/csv"
	})).Return(&port.UploadOutput{Location: "https://s3/feedesk-test/key"}, nil)
	storage.On("GetPresignedURL", mock.Anything, "feedesk-test", mock.AnythingOfType("string"), int64(3600)).
		Return("https://s3/presigned", nil)

	svc := service.NewReportService(billRepo, nil, storage, nil, testStorageConfig())

	result, err := svc.ArchiveCSV(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "https://s3/presigned", result.URL)
	assert.True(t, strings.HasPrefix(result.Key, "reports/fees/"))
	assert.Equal(t, int64(3600), result.ExpiresIn)
	storage.AssertExpectations(t)
}

func TestReportService_ArchiveCSV_UploadFailure(t *testing.T) {
	billRepo := new(mocks.MockFeeBillRepo)
	billRepo.On("ListAll", mock.Anything, (*domain.BillFilters)(nil)).Return([]domain.FeeBill{}, nil)

	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc := service.NewReportService(billRepo, nil, storage, nil, testStorageConfig())

	_, err := svc.ArchiveCSV(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrArchiveUploadFailed)
	storage.AssertNotCalled(t, "GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_SendOverdueReminders(t *testing.T) {
	past := time.Now().UTC().AddDate(0, 0, -10)
	future := time.Now().UTC().AddDate(0, 1, 0)
	overdueStudent := uuid.New()
	bills := []domain.FeeBill{
		{ID: uuid.New(), StudentID: overdueStudent, TotalAmount: 50000, BalanceAmount: 50000, DueDate: past},
		{ID: uuid.New(), StudentID: uuid.New(), TotalAmount: 50000, BalanceAmount: 50000, DueDate: future},
		{ID: uuid.New(), StudentID: uuid.New(), TotalAmount: 50000, PaidAmount: 50000, DueDate: past},
	}

	billRepo := new(mocks.MockFeeBillRepo)
	billRepo.On("ListAll", mock.Anything, (*domain.BillFilters)(nil)).Return(bills, nil)

	studentRepo := new(mocks.MockStudentRepo)
	studentRepo.On("GetByID", mock.Anything, overdueStudent).Return(&domain.Student{
		ID:            overdueStudent,
		GuardianName:  "R. Sharma",
		GuardianEmail: "sharma@example.test",
	}, nil)

	sender := new(mocks.MockEmailSender)
	sender.On("SendOverdueReminder", mock.Anything, "sharma@example.test", "R. Sharma",
		mock.AnythingOfType("*domain.FeeBill")).Return(nil)

	svc := service.NewReportService(billRepo, studentRepo, nil, sender, testStorageConfig())

	sent, err := svc.SendOverdueReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	sender.AssertNumberOfCalls(t, "SendOverdueReminder", 1)
}
