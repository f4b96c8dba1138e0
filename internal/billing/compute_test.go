package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"feedesk/internal/billing"
	"feedesk/internal/domain"
)

func TestBalance_FlooredAtZero(t *testing.T) {
	assert.Equal(t, int64(50000), billing.Balance(100000, 50000))
	assert.Equal(t, int64(0), billing.Balance(100000, 100000))
	// Overpayment is absorbed, not rejected.
	assert.Equal(t, int64(0), billing.Balance(100000, 150000))
}

func TestPreviewStatus(t *testing.T) {
	assert.Equal(t, domain.BillStatusPaid, billing.PreviewStatus(0))
	assert.Equal(t, domain.BillStatusPaid, billing.PreviewStatus(-1))
	assert.Equal(t, domain.BillStatusPartial, billing.PreviewStatus(1))
}

func TestResolveStatus(t *testing.T) {
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	before := due.AddDate(0, 0, -5)
	after := due.AddDate(0, 0, 5)

	assert.Equal(t, domain.BillStatusPaid, billing.ResolveStatus(1000, 1000, due, after))
	assert.Equal(t, domain.BillStatusPaid, billing.ResolveStatus(1000, 1200, due, after))
	assert.Equal(t, domain.BillStatusOverdue, billing.ResolveStatus(1000, 500, due, after))
	assert.Equal(t, domain.BillStatusOverdue, billing.ResolveStatus(1000, 0, due, after))
	assert.Equal(t, domain.BillStatusPartial, billing.ResolveStatus(1000, 500, due, before))
	assert.Equal(t, domain.BillStatusPending, billing.ResolveStatus(1000, 0, due, before))
}

func TestRecompute_PaymentsAccumulate(t *testing.T) {
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	now := due.AddDate(0, 0, -10)
	bill := domain.FeeBill{TotalAmount: 100000, PaidAmount: 0, DueDate: due}

	bill.PaidAmount += 30000
	billing.Recompute(&bill, now)
	assert.Equal(t, int64(70000), bill.BalanceAmount)
	assert.Equal(t, domain.BillStatusPartial, bill.Status)

	bill.PaidAmount += 20000
	billing.Recompute(&bill, now)
	assert.Equal(t, int64(50000), bill.PaidAmount)
	assert.Equal(t, int64(50000), bill.BalanceAmount)
	assert.Equal(t, domain.BillStatusPartial, bill.Status)

	bill.PaidAmount += 50000
	billing.Recompute(&bill, now)
	assert.Equal(t, int64(0), bill.BalanceAmount)
	assert.Equal(t, domain.BillStatusPaid, bill.Status)
}

func TestRecompute_BalanceInvariantHolds(t *testing.T) {
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct{ total, paid int64 }{
		{0, 0}, {100, 0}, {100, 100}, {100, 250}, {320000, 320000},
	}
	for _, tc := range cases {
		bill := domain.FeeBill{TotalAmount: tc.total, PaidAmount: tc.paid, DueDate: due}
		billing.Recompute(&bill, due)
		want := tc.total - tc.paid
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, bill.BalanceAmount)
	}
}
