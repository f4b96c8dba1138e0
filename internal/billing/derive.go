// Package billing implements the fee-billing engine: derivation of bill
// line items from class fee structures, balance and status computation,
// normalization of upstream record shapes, and aggregate collection
// reporting. Everything here is pure; persistence lives in the services.
package billing

import (
	"github.com/google/uuid"

	"feedesk/internal/domain"
)

// DeriveItems returns the line-item snapshot for a new bill of the given
// class. Recurring items come first (frequency defaulted to monthly),
// followed by one-time items. When no structure is configured for the class
// a single blank editable row is returned so the caller always has one. A
// structure that exists but holds no items yields an empty list, not the
// placeholder. The result is a fresh copy every call; switching class and
// deriving again never accumulates items from the previous class.
func DeriveItems(classID uuid.UUID, structures []domain.FeeStructure) domain.FeeItemList {
	for i := range structures {
		if structures[i].ClassID == classID {
			return snapshotItems(&structures[i])
		}
	}
	return domain.FeeItemList{blankItem()}
}

// snapshotItems copies a structure's items into a bill-ready list.
func snapshotItems(s *domain.FeeStructure) domain.FeeItemList {
	items := make(domain.FeeItemList, 0, len(s.RecurringItems)+len(s.OneTimeItems))
	for _, it := range s.RecurringItems {
		it.FeeType = domain.FeeTypeRecurring
		if it.Frequency == "" {
			it.Frequency = domain.DefaultFrequency
		}
		items = append(items, it)
	}
	for _, it := range s.OneTimeItems {
		it.FeeType = domain.FeeTypeOneTime
		it.Frequency = ""
		items = append(items, it)
	}
	return items
}

func blankItem() domain.FeeItem {
	return domain.FeeItem{
		ID:        uuid.New(),
		FeeHead:   "",
		Amount:    0,
		FeeType:   domain.FeeTypeRecurring,
		Frequency: domain.DefaultFrequency,
	}
}
