// Command seedstructures converts a fee structure Excel workbook into a SQL
// seed file. The sheet lists one charge per row: Class, Section, Fee Head,
// Amount (rupees), Type (recurring/one_time), Frequency.
// Usage: go run ./cmd/seedstructures fee_structures.xlsx
// Output: db/seeds/fee_structures.sql
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"feedesk/internal/billing"
	"feedesk/internal/domain"
)

type classKey struct {
	name    string
	section string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "fee_structures.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	outPath := "db/seeds/fee_structures.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("sheet has no data rows")
	}

	// Group charge rows per class, skipping the header row.
	order := []classKey{}
	items := map[classKey]domain.FeeItemList{}
	for i, row := range rows[1:] {
		if len(row) < 4 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		key := classKey{name: strings.TrimSpace(row[0]), section: cell(row, 1)}
		amount, err := parseRupees(cell(row, 3))
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		item := domain.FeeItem{
			ID:        uuid.New(),
			FeeHead:   cell(row, 2),
			Amount:    amount,
			FeeType:   domain.FeeItemType(cell(row, 4)),
			Frequency: domain.FeeFrequency(cell(row, 5)),
		}
		if _, ok := items[key]; !ok {
			order = append(order, key)
		}
		items[key] = append(items[key], item)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	fmt.Fprintln(out, "-- Class and fee structure seed data generated from Excel.")
	fmt.Fprintf(out, "-- %d classes.\n", len(order))
	fmt.Fprintln(out, "BEGIN;")
	fmt.Fprintln(out)

	for _, key := range order {
		structure := billing.NormalizeStructure(domain.StructureRecord{
			ID:       uuid.New(),
			ClassID:  uuid.New(),
			FeeItems: items[key],
		})

		recurring, err := json.Marshal(structure.RecurringItems)
		if err != nil {
			return fmt.Errorf("marshal recurring items: %w", err)
		}
		oneTime, err := json.Marshal(structure.OneTimeItems)
		if err != nil {
			return fmt.Errorf("marshal one-time items: %w", err)
		}

		fmt.Fprintf(out,
			"INSERT INTO classes (id, name, section) VALUES ('%s', %s, %s);\n",
			structure.ClassID, quote(key.name), quote(key.section))
		fmt.Fprintf(out,
			"INSERT INTO fee_structures (id, class_id, recurring_items, one_time_items, total_amount, status)\nVALUES ('%s', '%s', %s, %s, %d, 'active');\n\n",
			structure.ID, structure.ClassID, quote(string(recurring)), quote(string(oneTime)), structure.TotalAmount)
	}

	fmt.Fprintln(out, "COMMIT;")
	log.Printf("wrote %d fee structures to %s", len(order), outPath)
	return nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRupees converts a decimal rupee string like "2500.00" to minor units.
func parseRupees(raw string) (int64, error) {
	raw = strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return int64(v*100 + 0.5), nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
