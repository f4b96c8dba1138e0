package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// All money values are int64 minor currency units (paise). Integer
// arithmetic keeps the balance invariant exact across repeated
// partial payments.

// SchoolClass represents a class/grade that students are enrolled in.
type SchoolClass struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Section   string    `db:"section" json:"section"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Student represents an enrolled student.
type Student struct {
	ID             uuid.UUID `db:"id" json:"id"`
	AdmissionNo    string    `db:"admission_no" json:"admission_no"`
	FullName       string    `db:"full_name" json:"full_name"`
	ClassID        uuid.UUID `db:"class_id" json:"class_id"`
	GuardianName   string    `db:"guardian_name" json:"guardian_name"`
	GuardianEmail  string    `db:"guardian_email" json:"guardian_email"`
	GuardianPhone  string    `db:"guardian_phone" json:"guardian_phone"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// FeeItem is a single charge line. Inside a FeeStructure it is a template
// and may be edited; once copied onto a bill it is an immutable snapshot.
type FeeItem struct {
	ID        uuid.UUID    `json:"id"`
	FeeHead   string       `json:"fee_head"`
	Amount    int64        `json:"amount"`
	FeeType   FeeItemType  `json:"fee_type"`
	Frequency FeeFrequency `json:"frequency,omitempty"`
}

// FeeItemList is a JSONB-backed slice of fee items.
type FeeItemList []FeeItem

// Value implements driver.Valuer for JSONB columns.
func (l FeeItemList) Value() (driver.Value, error) {
	if l == nil {
		l = FeeItemList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB columns.
func (l *FeeItemList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = FeeItemList{}
		return nil
	default:
		return fmt.Errorf("FeeItemList.Scan: unsupported type %T", src)
	}
}

// FeeStructure is the per-class template of recurring and one-time charges.
// Invariant: TotalAmount equals the sum of all item amounts at write time.
type FeeStructure struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	ClassID        uuid.UUID       `db:"class_id" json:"class_id"`
	ClassName      string          `db:"class_name" json:"class_name"`
	RecurringItems FeeItemList     `db:"recurring_items" json:"recurring_items"`
	OneTimeItems   FeeItemList     `db:"one_time_items" json:"one_time_items"`
	TotalAmount    int64           `db:"total_amount" json:"total_amount"`
	Status         StructureStatus `db:"status" json:"status"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// FeeBill is a per-student invoice. FeeItems is a snapshot copied from the
// class structure at creation time; later structure edits do not touch it.
// Invariant: BalanceAmount == max(0, TotalAmount - PaidAmount).
type FeeBill struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	StudentID     uuid.UUID   `db:"student_id" json:"student_id"`
	StudentName   string      `db:"student_name" json:"student_name"`
	ClassID       uuid.UUID   `db:"class_id" json:"class_id"`
	ClassName     string      `db:"class_name" json:"class_name"`
	BillDate      time.Time   `db:"bill_date" json:"bill_date"`
	DueDate       time.Time   `db:"due_date" json:"due_date"`
	FeeItems      FeeItemList `db:"fee_items" json:"fee_items"`
	TotalAmount   int64       `db:"total_amount" json:"total_amount"`
	PaidAmount    int64       `db:"paid_amount" json:"paid_amount"`
	BalanceAmount int64       `db:"balance_amount" json:"balance_amount"`
	Status        BillStatus  `db:"status" json:"status"`
	CreatedBy     uuid.UUID   `db:"created_by" json:"created_by"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}

// Payment is a single recorded payment against a bill.
type Payment struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	BillID      uuid.UUID     `db:"bill_id" json:"bill_id"`
	Amount      int64         `db:"amount" json:"amount"`
	Method      PaymentMethod `db:"method" json:"method"`
	Reference   string        `db:"reference" json:"reference"`
	RecordedBy  uuid.UUID     `db:"recorded_by" json:"recorded_by"`
	PaymentDate time.Time     `db:"payment_date" json:"payment_date"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

// User represents an authenticated back-office user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// BillFilters narrows fee-bill queries.
type BillFilters struct {
	StudentID *uuid.UUID
	ClassID   *uuid.UUID
	Status    BillStatus
	From      *time.Time
	To        *time.Time
}

// CollectionSummary holds aggregate figures over a set of bills.
type CollectionSummary struct {
	TotalBills       int   `json:"total_bills"`
	TotalRevenue     int64 `json:"total_revenue"`
	TotalCollected   int64 `json:"total_collected"`
	TotalOutstanding int64 `json:"total_outstanding"`
	CollectionRate   int   `json:"collection_rate"`
	OverdueBills     int   `json:"overdue_bills"`
}

// StructureRecord is the wire shape a fee structure may arrive in from
// upstream systems: either partitioned item arrays or a single flat
// fee_items array tagged by fee type. Normalized on ingestion.
type StructureRecord struct {
	ID             uuid.UUID       `json:"id"`
	ClassID        uuid.UUID       `json:"class_id"`
	ClassName      string          `json:"class_name"`
	FeeItems       FeeItemList     `json:"fee_items,omitempty"`
	RecurringItems FeeItemList     `json:"recurring_items,omitempty"`
	OneTimeItems   FeeItemList     `json:"one_time_items,omitempty"`
	TotalAmount    *int64          `json:"total_amount,omitempty"`
	Status         StructureStatus `json:"status,omitempty"`
}

// BillRecord is the wire shape a fee bill may arrive in from upstream
// systems: either structured totals or a single scalar amount, and a flat
// item array tagged by fee type. Normalized on ingestion.
type BillRecord struct {
	ID            uuid.UUID   `json:"id"`
	StudentID     uuid.UUID   `json:"student_id"`
	StudentName   string      `json:"student_name"`
	ClassID       uuid.UUID   `json:"class_id"`
	ClassName     string      `json:"class_name"`
	BillDate      time.Time   `json:"bill_date"`
	DueDate       time.Time   `json:"due_date"`
	FeeItems      FeeItemList `json:"fee_items"`
	Amount        int64       `json:"amount"`
	TotalAmount   *int64      `json:"total_amount,omitempty"`
	BalanceAmount *int64      `json:"balance_amount,omitempty"`
	Status        BillStatus  `json:"status,omitempty"`
}
