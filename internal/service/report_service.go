package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"feedesk/internal/billing"
	"feedesk/internal/config"
	"feedesk/internal/csvexport"
	"feedesk/internal/domain"
	"feedesk/internal/port"
)

// ArchiveResult describes a report archive stored in object storage.
type ArchiveResult struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}

// ReportService produces aggregate collection figures and exports over the
// bill set.
type ReportService interface {
	CollectionSummary(ctx context.Context, filters *domain.BillFilters) (*domain.CollectionSummary, error)
	ExportCSV(ctx context.Context, filters *domain.BillFilters) ([]byte, error)
	// ArchiveCSV exports the filtered bill set, stores the file in object
	// storage and returns a presigned download link.
	ArchiveCSV(ctx context.Context, filters *domain.BillFilters) (*ArchiveResult, error)
	// SendOverdueReminders emails the guardian of every overdue bill and
	// returns the number of reminders sent.
	SendOverdueReminders(ctx context.Context) (int, error)
}

type reportService struct {
	billRepo    port.FeeBillRepository
	studentRepo port.StudentRepository
	storage     port.ObjectStorage
	emailSender port.EmailSender
	storageCfg  config.StorageConfig
}

// NewReportService creates a new ReportService implementation. storage and
// emailSender may be nil; archiving and reminders then report failure.
func NewReportService(
	billRepo port.FeeBillRepository,
	studentRepo port.StudentRepository,
	storage port.ObjectStorage,
	emailSender port.EmailSender,
	storageCfg config.StorageConfig,
) ReportService {
	return &reportService{
		billRepo:    billRepo,
		studentRepo: studentRepo,
		storage:     storage,
		emailSender: emailSender,
		storageCfg:  storageCfg,
	}
}

// loadBills fetches the authoritative filtered bill set with derived
// fields refreshed against the current clock.
func (s *reportService) loadBills(ctx context.Context, filters *domain.BillFilters) ([]domain.FeeBill, time.Time, error) {
	bills, err := s.billRepo.ListAll(ctx, filters)
	if err != nil {
		return nil, time.Time{}, err
	}
	now := time.Now().UTC()
	for i := range bills {
		billing.Recompute(&bills[i], now)
	}
	return bills, now, nil
}

func (s *reportService) CollectionSummary(ctx context.Context, filters *domain.BillFilters) (*domain.CollectionSummary, error) {
	bills, now, err := s.loadBills(ctx, filters)
	if err != nil {
		return nil, err
	}
	summary := billing.Summarize(bills, now)
	return &summary, nil
}

func (s *reportService) ExportCSV(ctx context.Context, filters *domain.BillFilters) ([]byte, error) {
	bills, _, err := s.loadBills(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("reportService.ExportCSV: %w", err)
	}
	if err := w.WriteBills(bills); err != nil {
		return nil, fmt.Errorf("reportService.ExportCSV: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("reportService.ExportCSV: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *reportService) ArchiveCSV(ctx context.Context, filters *domain.BillFilters) (*ArchiveResult, error) {
	if s.storage == nil {
		return nil, domain.ErrArchiveUploadFailed
	}

	data, err := s.ExportCSV(ctx, filters)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reports/fees/%s.csv", time.Now().UTC().Format("2006-01-02T15-04-05"))
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.storageCfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: "text/csv",
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveUploadFailed, err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.storageCfg.Bucket, key, s.storageCfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveUploadFailed, err)
	}

	return &ArchiveResult{Key: key, URL: url, ExpiresIn: s.storageCfg.PresignExpiry}, nil
}

func (s *reportService) SendOverdueReminders(ctx context.Context) (int, error) {
	if s.emailSender == nil {
		return 0, nil
	}

	bills, _, err := s.loadBills(ctx, nil)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range bills {
		b := &bills[i]
		if b.Status != domain.BillStatusOverdue {
			continue
		}
		student, err := s.studentRepo.GetByID(ctx, b.StudentID)
		if err != nil || student.GuardianEmail == "" {
			continue
		}
		if err := s.emailSender.SendOverdueReminder(ctx, student.GuardianEmail, student.GuardianName, b); err != nil {
			log.Printf("WARNING: overdue reminder email failed for bill %s: %v", b.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}
