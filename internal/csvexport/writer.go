package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"feedesk/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (12 columns).
var columns = []string{
	"Bill ID",
	"Student Name",
	"Class",
	"Bill Date",
	"Due Date",
	"Fee Heads",
	"Total Amount",
	"Paid Amount",
	"Balance Amount",
	"Status",
	"Created At",
	"Updated At",
}

// Writer wraps csv.Writer for exporting fee bills as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteBills converts a batch of bills to CSV rows and writes them.
func (w *Writer) WriteBills(bills []domain.FeeBill) error {
	for i := range bills {
		row := billToRow(&bills[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// billToRow converts a single bill to a 12-element string slice.
func billToRow(b *domain.FeeBill) []string {
	row := make([]string, len(columns))
	row[0] = b.ID.String()
	row[1] = b.StudentName
	row[2] = b.ClassName
	row[3] = b.BillDate.Format("2006-01-02")
	row[4] = b.DueDate.Format("2006-01-02")
	row[5] = joinFeeHeads(b.FeeItems)
	row[6] = formatMoney(b.TotalAmount)
	row[7] = formatMoney(b.PaidAmount)
	row[8] = formatMoney(b.BalanceAmount)
	row[9] = string(b.Status)
	row[10] = b.CreatedAt.Format(time.RFC3339)
	row[11] = b.UpdatedAt.Format(time.RFC3339)
	return row
}

func joinFeeHeads(items domain.FeeItemList) string {
	s := ""
	for i, it := range items {
		if i > 0 {
			s += "; "
		}
		s += it.FeeHead
	}
	return s
}

// formatMoney renders a minor-unit amount as a decimal string with two
// fractional digits, e.g. 250000 -> "2500.00".
func formatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return sign + strconv.FormatInt(minor/100, 10) + "." + pad2(minor%100)
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
