package billing

import (
	"math"
	"time"

	"feedesk/internal/domain"
)

// Summarize folds a bill set into aggregate collection figures. It is
// recomputed from the authoritative bill list on every call; no incremental
// aggregate state exists anywhere. The collection rate is a whole-number
// percentage, zero when nothing has been billed.
func Summarize(bills []domain.FeeBill, now time.Time) domain.CollectionSummary {
	var s domain.CollectionSummary
	s.TotalBills = len(bills)
	for i := range bills {
		b := &bills[i]
		s.TotalRevenue += b.TotalAmount
		s.TotalOutstanding += b.BalanceAmount
		if ResolveStatus(b.TotalAmount, b.PaidAmount, b.DueDate, now) == domain.BillStatusOverdue {
			s.OverdueBills++
		}
	}
	s.TotalCollected = s.TotalRevenue - s.TotalOutstanding
	if s.TotalRevenue > 0 {
		s.CollectionRate = int(math.Round(100 * float64(s.TotalCollected) / float64(s.TotalRevenue)))
	}
	return s
}
