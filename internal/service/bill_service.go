package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"feedesk/internal/billing"
	"feedesk/internal/domain"
	"feedesk/internal/port"
)

// CreateBillInput is the DTO for creating a fee bill. When Items is empty
// the line items are derived from the student's class structure.
type CreateBillInput struct {
	StudentID uuid.UUID
	BillDate  *time.Time
	DueDate   *time.Time
	Items     domain.FeeItemList
	CreatedBy uuid.UUID
}

// UpdateBillInput is the DTO for editing a bill before any payment has
// been recorded against it.
type UpdateBillInput struct {
	BillDate *time.Time
	DueDate  *time.Time
	Items    domain.FeeItemList
}

// RecordPaymentInput is the DTO for recording a payment against a bill.
type RecordPaymentInput struct {
	BillID      uuid.UUID
	Amount      int64
	Method      domain.PaymentMethod
	Reference   string
	PaymentDate *time.Time
	RecordedBy  uuid.UUID
}

// BillService manages fee bills and their payments.
type BillService interface {
	Create(ctx context.Context, input *CreateBillInput) (*domain.FeeBill, error)
	// Import persists bills arriving as upstream records, normalizing
	// scalar amounts and flat item lists before storing them.
	Import(ctx context.Context, records []domain.BillRecord, createdBy uuid.UUID) ([]domain.FeeBill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeBill, error)
	List(ctx context.Context, filters *domain.BillFilters, offset, limit int) ([]domain.FeeBill, int, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateBillInput) (*domain.FeeBill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeriveItems previews the line items a new bill for the class would
	// carry, without creating anything.
	DeriveItems(ctx context.Context, classID uuid.UUID) (domain.FeeItemList, error)
	RecordPayment(ctx context.Context, input *RecordPaymentInput) (*domain.FeeBill, error)
	ListPayments(ctx context.Context, billID uuid.UUID) ([]domain.Payment, error)
}

type billService struct {
	billRepo      port.FeeBillRepository
	paymentRepo   port.PaymentRepository
	structureRepo port.FeeStructureRepository
	studentRepo   port.StudentRepository
	classRepo     port.ClassRepository
	emailSender   port.EmailSender
	dueDays       int
}

// NewBillService creates a new BillService implementation. emailSender may
// be nil; receipts are then skipped.
func NewBillService(
	billRepo port.FeeBillRepository,
	paymentRepo port.PaymentRepository,
	structureRepo port.FeeStructureRepository,
	studentRepo port.StudentRepository,
	classRepo port.ClassRepository,
	emailSender port.EmailSender,
	dueDays int,
) BillService {
	return &billService{
		billRepo:      billRepo,
		paymentRepo:   paymentRepo,
		structureRepo: structureRepo,
		studentRepo:   studentRepo,
		classRepo:     classRepo,
		emailSender:   emailSender,
		dueDays:       dueDays,
	}
}

// deriveForClass wraps billing.DeriveItems with the structure lookup. A
// missing structure is not an error here; derivation falls back to the
// blank placeholder row.
func (s *billService) deriveForClass(ctx context.Context, classID uuid.UUID) (domain.FeeItemList, error) {
	var structures []domain.FeeStructure
	structure, err := s.structureRepo.GetByClass(ctx, classID)
	switch {
	case err == nil:
		structures = append(structures, *structure)
	case errors.Is(err, domain.ErrStructureNotFound):
		// fall through with no structure
	default:
		return nil, err
	}
	return billing.DeriveItems(classID, structures), nil
}

func (s *billService) DeriveItems(ctx context.Context, classID uuid.UUID) (domain.FeeItemList, error) {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return nil, err
	}
	return s.deriveForClass(ctx, classID)
}

func (s *billService) Create(ctx context.Context, input *CreateBillInput) (*domain.FeeBill, error) {
	student, err := s.studentRepo.GetByID(ctx, input.StudentID)
	if err != nil {
		return nil, err
	}
	class, err := s.classRepo.GetByID(ctx, student.ClassID)
	if err != nil {
		return nil, err
	}

	items := input.Items
	if len(items) == 0 {
		items, err = s.deriveForClass(ctx, student.ClassID)
		if err != nil {
			return nil, err
		}
	} else {
		if err := validateItems(items, false); err != nil {
			return nil, err
		}
		items = assignItemIDs(items)
	}

	now := time.Now().UTC()
	billDate := now
	if input.BillDate != nil {
		billDate = *input.BillDate
	}
	dueDate := billDate.AddDate(0, 0, s.dueDays)
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	bill := &domain.FeeBill{
		ID:          uuid.New(),
		StudentID:   student.ID,
		StudentName: student.FullName,
		ClassID:     class.ID,
		ClassName:   class.Name,
		BillDate:    billDate,
		DueDate:     dueDate,
		FeeItems:    items,
		TotalAmount: billing.ItemsTotal(items),
		PaidAmount:  0,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	billing.Recompute(bill, now)

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *billService) Import(ctx context.Context, records []domain.BillRecord, createdBy uuid.UUID) ([]domain.FeeBill, error) {
	now := time.Now().UTC()
	imported := make([]domain.FeeBill, 0, len(records))

	for _, rec := range records {
		bill := billing.NormalizeBill(rec)

		student, err := s.studentRepo.GetByID(ctx, bill.StudentID)
		if err != nil {
			return nil, err
		}
		if bill.StudentName == "" {
			bill.StudentName = student.FullName
		}
		if bill.ClassID == uuid.Nil {
			bill.ClassID = student.ClassID
		}
		if bill.ClassName == "" {
			class, err := s.classRepo.GetByID(ctx, bill.ClassID)
			if err != nil {
				return nil, err
			}
			bill.ClassName = class.Name
		}

		if bill.ID == uuid.Nil {
			bill.ID = uuid.New()
		}
		bill.CreatedBy = createdBy
		bill.CreatedAt = now
		bill.UpdatedAt = now
		billing.Recompute(&bill, now)

		if err := s.billRepo.Create(ctx, &bill); err != nil {
			return nil, err
		}
		imported = append(imported, bill)
	}
	return imported, nil
}

func (s *billService) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeBill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	billing.Recompute(bill, time.Now().UTC())
	return bill, nil
}

func (s *billService) List(ctx context.Context, filters *domain.BillFilters, offset, limit int) ([]domain.FeeBill, int, error) {
	bills, total, err := s.billRepo.List(ctx, filters, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	now := time.Now().UTC()
	for i := range bills {
		billing.Recompute(&bills[i], now)
	}
	return bills, total, nil
}

func (s *billService) Update(ctx context.Context, id uuid.UUID, input *UpdateBillInput) (*domain.FeeBill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill.PaidAmount > 0 {
		return nil, domain.ErrBillHasPayments
	}

	if input.BillDate != nil {
		bill.BillDate = *input.BillDate
	}
	if input.DueDate != nil {
		bill.DueDate = *input.DueDate
	}
	if input.Items != nil {
		if err := validateItems(input.Items, false); err != nil {
			return nil, err
		}
		bill.FeeItems = assignItemIDs(input.Items)
		bill.TotalAmount = billing.ItemsTotal(bill.FeeItems)
	}

	now := time.Now().UTC()
	bill.UpdatedAt = now
	billing.Recompute(bill, now)

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *billService) Delete(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill.PaidAmount > 0 {
		return domain.ErrBillHasPayments
	}
	return s.billRepo.Delete(ctx, id)
}

func (s *billService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*domain.FeeBill, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidPayment
	}
	method := input.Method
	if method == "" {
		method = domain.PaymentMethodCash
	}
	if !domain.AllowedPaymentMethods[method] {
		return nil, domain.ErrInvalidPayment
	}

	bill, err := s.billRepo.GetByID(ctx, input.BillID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	paymentDate := now
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}

	// Work on a copy; the stored bill only changes if the transaction
	// commits.
	updated := *bill
	updated.PaidAmount += input.Amount
	updated.UpdatedAt = now
	billing.Recompute(&updated, now)

	payment := &domain.Payment{
		ID:          uuid.New(),
		BillID:      bill.ID,
		Amount:      input.Amount,
		Method:      method,
		Reference:   input.Reference,
		RecordedBy:  input.RecordedBy,
		PaymentDate: paymentDate,
		CreatedAt:   now,
	}

	if err := s.paymentRepo.Record(ctx, payment, &updated); err != nil {
		return nil, err
	}

	s.sendReceipt(ctx, &updated, payment)
	return &updated, nil
}

// sendReceipt emails the guardian after a successful payment. Delivery is
// best effort; failures are logged and never fail the operation.
func (s *billService) sendReceipt(ctx context.Context, bill *domain.FeeBill, payment *domain.Payment) {
	if s.emailSender == nil {
		return
	}
	student, err := s.studentRepo.GetByID(ctx, bill.StudentID)
	if err != nil || student.GuardianEmail == "" {
		return
	}
	if err := s.emailSender.SendPaymentReceipt(ctx, student.GuardianEmail, student.GuardianName, bill, payment); err != nil {
		log.Printf("WARNING: payment receipt email failed for bill %s: %v", bill.ID, err)
	}
}

func (s *billService) ListPayments(ctx context.Context, billID uuid.UUID) ([]domain.Payment, error) {
	if _, err := s.billRepo.GetByID(ctx, billID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByBill(ctx, billID)
}
