// Package ledger loads expense ledgers from delimited files.
//
// The expected shape is a CSV file with a header row naming the columns
// Name, Reason, Amount and Day (any order, case-insensitive):
//
//	Name,Reason,Amount,Day
//	Alice,groceries,42.50,1
//	Bob,beer,12,1
//
// The loader validates field presence and numeric fields so the calculator
// can assume a well-formed ledger.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jakobj/money-helsinki/internal/models"
)

// ErrEmpty is returned for a ledger with a header but no expense rows.
var ErrEmpty = errors.New("ledger contains no expense rows")

// column indices resolved from the header row.
type columns struct {
	name   int
	reason int
	amount int
	day    int
}

// Load reads a CSV ledger from r and returns its expense rows in file order.
func Load(r io.Reader) ([]models.Expense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		expense, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		expenses = append(expenses, expense)
	}

	if len(expenses) == 0 {
		return nil, ErrEmpty
	}
	return expenses, nil
}

// LoadFile reads a CSV ledger from the file at path.
func LoadFile(path string) ([]models.Expense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	expenses, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return expenses, nil
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{name: -1, reason: -1, amount: -1, day: -1}
	for i, field := range header {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "name":
			cols.name = i
		case "reason":
			cols.reason = i
		case "amount":
			cols.amount = i
		case "day":
			cols.day = i
		}
	}

	var missing []string
	if cols.name < 0 {
		missing = append(missing, "Name")
	}
	if cols.reason < 0 {
		missing = append(missing, "Reason")
	}
	if cols.amount < 0 {
		missing = append(missing, "Amount")
	}
	if cols.day < 0 {
		missing = append(missing, "Day")
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("header is missing column(s): %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(record []string, cols columns) (models.Expense, error) {
	var expense models.Expense

	max := cols.name
	for _, i := range []int{cols.reason, cols.amount, cols.day} {
		if i > max {
			max = i
		}
	}
	if len(record) <= max {
		return expense, fmt.Errorf("expected at least %d fields, got %d", max+1, len(record))
	}

	expense.Name = strings.TrimSpace(record[cols.name])
	if expense.Name == "" {
		return expense, errors.New("empty participant name")
	}
	expense.Reason = strings.TrimSpace(record[cols.reason])

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[cols.amount]), 64)
	if err != nil {
		return expense, fmt.Errorf("bad amount %q", record[cols.amount])
	}
	expense.Amount = amount

	day, err := strconv.Atoi(strings.TrimSpace(record[cols.day]))
	if err != nil {
		return expense, fmt.Errorf("bad day %q", record[cols.day])
	}
	expense.Day = day

	return expense, nil
}
