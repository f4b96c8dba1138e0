package billing

import (
	"feedesk/internal/domain"
)

// NormalizeBill converts an upstream bill record into a FeeBill. Records
// carrying total_amount/balance_amount are used as-is; records with only a
// scalar amount are treated as fully outstanding (total = balance = amount).
// Recurring items without a frequency default to monthly. Normalizing an
// already-normalized record yields an identical result.
func NormalizeBill(rec domain.BillRecord) domain.FeeBill {
	total := rec.Amount
	if rec.TotalAmount != nil {
		total = *rec.TotalAmount
	}
	balance := total
	if rec.BalanceAmount != nil {
		balance = *rec.BalanceAmount
	}
	paid := total - balance
	if paid < 0 {
		paid = 0
	}

	bill := domain.FeeBill{
		ID:            rec.ID,
		StudentID:     rec.StudentID,
		StudentName:   rec.StudentName,
		ClassID:       rec.ClassID,
		ClassName:     rec.ClassName,
		BillDate:      rec.BillDate,
		DueDate:       rec.DueDate,
		FeeItems:      normalizeItems(rec.FeeItems),
		TotalAmount:   total,
		PaidAmount:    paid,
		BalanceAmount: Balance(total, paid),
		Status:        rec.Status,
	}
	if bill.Status == "" {
		bill.Status = domain.BillStatusPending
	}
	return bill
}

// NormalizeStructure converts an upstream structure record into a
// FeeStructure. A flat fee_items array is partitioned into recurring and
// one-time items by each item's fee_type tag; already-partitioned records
// pass through unchanged apart from frequency defaulting. The stored total
// is always recomputed from the items.
func NormalizeStructure(rec domain.StructureRecord) domain.FeeStructure {
	recurring := rec.RecurringItems
	oneTime := rec.OneTimeItems
	if len(rec.FeeItems) > 0 {
		recurring, oneTime = partitionItems(rec.FeeItems)
	}

	recurring = normalizeRecurring(recurring)
	oneTime = normalizeOneTime(oneTime)

	status := rec.Status
	if status == "" {
		status = domain.StructureActive
	}

	return domain.FeeStructure{
		ID:             rec.ID,
		ClassID:        rec.ClassID,
		ClassName:      rec.ClassName,
		RecurringItems: recurring,
		OneTimeItems:   oneTime,
		TotalAmount:    ItemsTotal(recurring) + ItemsTotal(oneTime),
		Status:         status,
	}
}

func partitionItems(items domain.FeeItemList) (recurring, oneTime domain.FeeItemList) {
	recurring = domain.FeeItemList{}
	oneTime = domain.FeeItemList{}
	for _, it := range items {
		if it.FeeType == domain.FeeTypeOneTime {
			oneTime = append(oneTime, it)
			continue
		}
		recurring = append(recurring, it)
	}
	return recurring, oneTime
}

func normalizeItems(items domain.FeeItemList) domain.FeeItemList {
	out := make(domain.FeeItemList, 0, len(items))
	for _, it := range items {
		if it.FeeType == "" {
			it.FeeType = domain.FeeTypeRecurring
		}
		switch it.FeeType {
		case domain.FeeTypeRecurring:
			if it.Frequency == "" {
				it.Frequency = domain.DefaultFrequency
			}
		case domain.FeeTypeOneTime:
			it.Frequency = ""
		}
		out = append(out, it)
	}
	return out
}

func normalizeRecurring(items domain.FeeItemList) domain.FeeItemList {
	out := make(domain.FeeItemList, 0, len(items))
	for _, it := range items {
		it.FeeType = domain.FeeTypeRecurring
		if it.Frequency == "" {
			it.Frequency = domain.DefaultFrequency
		}
		out = append(out, it)
	}
	return out
}

func normalizeOneTime(items domain.FeeItemList) domain.FeeItemList {
	out := make(domain.FeeItemList, 0, len(items))
	for _, it := range items {
		it.FeeType = domain.FeeTypeOneTime
		it.Frequency = ""
		out = append(out, it)
	}
	return out
}
