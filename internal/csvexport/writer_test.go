package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedesk/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 12)
	assert.Equal(t, "Bill ID", row[0])
	assert.Equal(t, "Student Name", row[1])
	assert.Equal(t, "Updated At", row[11])
}

func TestWriteBills(t *testing.T) {
	billDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	bill := domain.FeeBill{
		ID:          uuid.New(),
		StudentName: "Asha Rao",
		ClassName:   "Class 5",
		BillDate:    billDate,
		DueDate:     dueDate,
		FeeItems: domain.FeeItemList{
			{FeeHead: "Tuition Fee", Amount: 250000},
			{FeeHead: "Exam Fee", Amount: 50000},
			{FeeHead: "School Tie", Amount: 20000},
		},
		TotalAmount:   320000,
		PaidAmount:    100000,
		BalanceAmount: 220000,
		Status:        domain.BillStatusPartial,
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteBills([]domain.FeeBill{bill}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, bill.ID.String(), row[0])
	assert.Equal(t, "Asha Rao", row[1])
	assert.Equal(t, "Class 5", row[2])
	assert.Equal(t, "2026-04-01", row[3])
	assert.Equal(t, "2026-05-01", row[4])
	assert.Equal(t, "Tuition Fee; Exam Fee; School Tie", row[5])
	assert.Equal(t, "3200.00", row[6])
	assert.Equal(t, "1000.00", row[7])
	assert.Equal(t, "2200.00", row[8])
	assert.Equal(t, "partial", row[9])
}

func TestFormatMoney(t *testing.T) {
	cases := map[int64]string{
		0:       "0.00",
		5:       "0.05",
		100:     "1.00",
		320000:  "3200.00",
		250050:  "2500.50",
		-150075: "-1500.75",
	}
	for minor, want := range cases {
		assert.Equal(t, want, formatMoney(minor))
	}
}
