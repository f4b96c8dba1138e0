package billing_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedesk/internal/billing"
	"feedesk/internal/domain"
)

func classFiveStructure(classID uuid.UUID) domain.FeeStructure {
	return domain.FeeStructure{
		ID:        uuid.New(),
		ClassID:   classID,
		ClassName: "Class 5",
		RecurringItems: domain.FeeItemList{
			{ID: uuid.New(), FeeHead: "Tuition", Amount: 250000, Frequency: domain.FrequencyMonthly},
			{ID: uuid.New(), FeeHead: "Exam", Amount: 50000, Frequency: domain.FrequencyQuarterly},
		},
		OneTimeItems: domain.FeeItemList{
			{ID: uuid.New(), FeeHead: "Tie", Amount: 20000},
		},
		TotalAmount: 320000,
		Status:      domain.StructureActive,
	}
}

func TestDeriveItems_MatchingStructure(t *testing.T) {
	classID := uuid.New()
	structures := []domain.FeeStructure{classFiveStructure(classID)}

	items := billing.DeriveItems(classID, structures)

	require.Len(t, items, 3)
	assert.Equal(t, "Tuition", items[0].FeeHead)
	assert.Equal(t, domain.FeeTypeRecurring, items[0].FeeType)
	assert.Equal(t, domain.FrequencyMonthly, items[0].Frequency)
	assert.Equal(t, "Exam", items[1].FeeHead)
	assert.Equal(t, domain.FrequencyQuarterly, items[1].Frequency)
	assert.Equal(t, "Tie", items[2].FeeHead)
	assert.Equal(t, domain.FeeTypeOneTime, items[2].FeeType)
	assert.Empty(t, items[2].Frequency)
	assert.Equal(t, int64(320000), billing.ItemsTotal(items))
}

func TestDeriveItems_MissingFrequencyDefaultsToMonthly(t *testing.T) {
	classID := uuid.New()
	structures := []domain.FeeStructure{{
		ClassID: classID,
		RecurringItems: domain.FeeItemList{
			{ID: uuid.New(), FeeHead: "Library", Amount: 10000},
		},
	}}

	items := billing.DeriveItems(classID, structures)

	require.Len(t, items, 1)
	assert.Equal(t, domain.FrequencyMonthly, items[0].Frequency)
}

func TestDeriveItems_NoStructureYieldsBlankPlaceholder(t *testing.T) {
	items := billing.DeriveItems(uuid.New(), []domain.FeeStructure{classFiveStructure(uuid.New())})

	require.Len(t, items, 1)
	assert.Empty(t, items[0].FeeHead)
	assert.Zero(t, items[0].Amount)
	assert.Equal(t, domain.FeeTypeRecurring, items[0].FeeType)
	assert.Equal(t, domain.FrequencyMonthly, items[0].Frequency)
	assert.Zero(t, billing.ItemsTotal(items))
}

func TestDeriveItems_EmptyStructureYieldsEmptyList(t *testing.T) {
	classID := uuid.New()
	structures := []domain.FeeStructure{{ID: uuid.New(), ClassID: classID}}

	items := billing.DeriveItems(classID, structures)

	// Present-but-empty is distinguished from missing: no placeholder row.
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestDeriveItems_SwitchingClassLeavesNoResidue(t *testing.T) {
	classA := uuid.New()
	classB := uuid.New()
	structures := []domain.FeeStructure{
		classFiveStructure(classA),
		{
			ClassID: classB,
			RecurringItems: domain.FeeItemList{
				{ID: uuid.New(), FeeHead: "Tuition", Amount: 180000, Frequency: domain.FrequencyMonthly},
			},
		},
	}

	_ = billing.DeriveItems(classA, structures)
	items := billing.DeriveItems(classB, structures)

	require.Len(t, items, 1)
	assert.Equal(t, int64(180000), items[0].Amount)
}

func TestDeriveItems_SnapshotDoesNotAliasStructure(t *testing.T) {
	classID := uuid.New()
	structures := []domain.FeeStructure{classFiveStructure(classID)}

	items := billing.DeriveItems(classID, structures)
	items[0].Amount = 999999

	assert.Equal(t, int64(250000), structures[0].RecurringItems[0].Amount)
}
