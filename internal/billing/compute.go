package billing

import (
	"time"

	"feedesk/internal/domain"
)

// ItemsTotal sums the item amounts. Always recomputed from the current
// list; never cached across edits.
func ItemsTotal(items domain.FeeItemList) int64 {
	var total int64
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// Balance is the outstanding amount, floored at zero. Overpayment is
// absorbed rather than rejected.
func Balance(total, paid int64) int64 {
	b := total - paid
	if b < 0 {
		return 0
	}
	return b
}

// PreviewStatus is the two-way live-preview status used during payment
// entry: paid when nothing is outstanding, otherwise partial.
func PreviewStatus(balance int64) domain.BillStatus {
	if balance <= 0 {
		return domain.BillStatusPaid
	}
	return domain.BillStatusPartial
}

// ResolveStatus is the single authoritative status computation for a
// persisted bill: paid when fully settled, overdue when the due date has
// passed without full payment, partial when something has been paid, else
// pending.
func ResolveStatus(total, paid int64, dueDate, now time.Time) domain.BillStatus {
	if Balance(total, paid) == 0 {
		return domain.BillStatusPaid
	}
	if now.After(dueDate) {
		return domain.BillStatusOverdue
	}
	if paid > 0 {
		return domain.BillStatusPartial
	}
	return domain.BillStatusPending
}

// Recompute refreshes a bill's derived fields (balance and status) from its
// totals against the given clock.
func Recompute(bill *domain.FeeBill, now time.Time) {
	bill.BalanceAmount = Balance(bill.TotalAmount, bill.PaidAmount)
	bill.Status = ResolveStatus(bill.TotalAmount, bill.PaidAmount, bill.DueDate, now)
}
