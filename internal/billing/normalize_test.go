package billing_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedesk/internal/billing"
	"feedesk/internal/domain"
)

func int64ptr(v int64) *int64 { return &v }

func TestNormalizeBill_ScalarAmountFallback(t *testing.T) {
	rec := domain.BillRecord{
		ID:     uuid.New(),
		Amount: 320000,
	}

	bill := billing.NormalizeBill(rec)

	// Untouched bill is fully outstanding.
	assert.Equal(t, int64(320000), bill.TotalAmount)
	assert.Equal(t, int64(320000), bill.BalanceAmount)
	assert.Equal(t, int64(0), bill.PaidAmount)
	assert.Equal(t, domain.BillStatusPending, bill.Status)
}

func TestNormalizeBill_StructuredTotalsPreferred(t *testing.T) {
	rec := domain.BillRecord{
		ID:            uuid.New(),
		Amount:        999999,
		TotalAmount:   int64ptr(320000),
		BalanceAmount: int64ptr(120000),
		Status:        domain.BillStatusPartial,
	}

	bill := billing.NormalizeBill(rec)

	assert.Equal(t, int64(320000), bill.TotalAmount)
	assert.Equal(t, int64(120000), bill.BalanceAmount)
	assert.Equal(t, int64(200000), bill.PaidAmount)
	assert.Equal(t, domain.BillStatusPartial, bill.Status)
}

func TestNormalizeBill_ItemFrequencyDefaulting(t *testing.T) {
	rec := domain.BillRecord{
		ID: uuid.New(),
		FeeItems: domain.FeeItemList{
			{FeeHead: "Tuition", Amount: 250000},
			{FeeHead: "Admission", Amount: 100000, FeeType: domain.FeeTypeOneTime, Frequency: domain.FrequencyYearly},
		},
		Amount: 350000,
	}

	bill := billing.NormalizeBill(rec)

	require.Len(t, bill.FeeItems, 2)
	assert.Equal(t, domain.FeeTypeRecurring, bill.FeeItems[0].FeeType)
	assert.Equal(t, domain.FrequencyMonthly, bill.FeeItems[0].Frequency)
	// One-time items never carry a frequency.
	assert.Empty(t, bill.FeeItems[1].Frequency)
}

func TestNormalizeBill_Idempotent(t *testing.T) {
	rec := domain.BillRecord{
		ID:          uuid.New(),
		StudentName: "A Student",
		BillDate:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		FeeItems: domain.FeeItemList{
			{ID: uuid.New(), FeeHead: "Tuition", Amount: 250000},
		},
		Amount: 250000,
	}

	first := billing.NormalizeBill(rec)
	second := billing.NormalizeBill(domain.BillRecord{
		ID:            first.ID,
		StudentID:     first.StudentID,
		StudentName:   first.StudentName,
		ClassID:       first.ClassID,
		ClassName:     first.ClassName,
		BillDate:      first.BillDate,
		DueDate:       first.DueDate,
		FeeItems:      first.FeeItems,
		TotalAmount:   int64ptr(first.TotalAmount),
		BalanceAmount: int64ptr(first.BalanceAmount),
		Status:        first.Status,
	})

	assert.Equal(t, first, second)
}

func TestNormalizeStructure_PartitionsFlatItems(t *testing.T) {
	rec := domain.StructureRecord{
		ID:      uuid.New(),
		ClassID: uuid.New(),
		FeeItems: domain.FeeItemList{
			{FeeHead: "Tuition", Amount: 250000, FeeType: domain.FeeTypeRecurring},
			{FeeHead: "Tie", Amount: 20000, FeeType: domain.FeeTypeOneTime},
			{FeeHead: "Exam", Amount: 50000}, // untagged defaults to recurring
		},
	}

	s := billing.NormalizeStructure(rec)

	require.Len(t, s.RecurringItems, 2)
	require.Len(t, s.OneTimeItems, 1)
	assert.Equal(t, domain.FrequencyMonthly, s.RecurringItems[0].Frequency)
	assert.Equal(t, domain.FrequencyMonthly, s.RecurringItems[1].Frequency)
	assert.Equal(t, "Tie", s.OneTimeItems[0].FeeHead)
	assert.Equal(t, int64(320000), s.TotalAmount)
	assert.Equal(t, domain.StructureActive, s.Status)
}

func TestNormalizeStructure_Idempotent(t *testing.T) {
	rec := domain.StructureRecord{
		ID:      uuid.New(),
		ClassID: uuid.New(),
		FeeItems: domain.FeeItemList{
			{ID: uuid.New(), FeeHead: "Tuition", Amount: 250000},
			{ID: uuid.New(), FeeHead: "Admission", Amount: 100000, FeeType: domain.FeeTypeOneTime},
		},
	}

	first := billing.NormalizeStructure(rec)
	second := billing.NormalizeStructure(domain.StructureRecord{
		ID:             first.ID,
		ClassID:        first.ClassID,
		ClassName:      first.ClassName,
		RecurringItems: first.RecurringItems,
		OneTimeItems:   first.OneTimeItems,
		TotalAmount:    int64ptr(first.TotalAmount),
		Status:         first.Status,
	})

	assert.Equal(t, first, second)
}

func TestNormalizeStructure_TotalAlwaysRecomputed(t *testing.T) {
	rec := domain.StructureRecord{
		ID:          uuid.New(),
		TotalAmount: int64ptr(1), // stale upstream total is ignored
		RecurringItems: domain.FeeItemList{
			{FeeHead: "Tuition", Amount: 250000, Frequency: domain.FrequencyMonthly},
		},
	}

	s := billing.NormalizeStructure(rec)

	assert.Equal(t, int64(250000), s.TotalAmount)
}
