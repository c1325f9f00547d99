package ledger

import (
	"errors"
	"strings"
	"testing"

	"github.com/jakobj/money-helsinki/internal/models"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantErr      bool
		validateFunc func(t *testing.T, expenses []models.Expense)
	}{
		{
			name: "well-formed ledger",
			input: "Name,Reason,Amount,Day\n" +
				"Alice,groceries,42.50,1\n" +
				"Bob,beer,12,1\n" +
				"Alice,taxi,20,2\n",
			validateFunc: func(t *testing.T, expenses []models.Expense) {
				if len(expenses) != 3 {
					t.Fatalf("got %d expenses, want 3", len(expenses))
				}
				first := expenses[0]
				if first.Name != "Alice" || first.Reason != "groceries" || first.Amount != 42.50 || first.Day != 1 {
					t.Errorf("first expense = %+v", first)
				}
			},
		},
		{
			name: "columns in any order and case",
			input: "day,AMOUNT,name,Reason\n" +
				"3,9.99,Carol,museum\n",
			validateFunc: func(t *testing.T, expenses []models.Expense) {
				e := expenses[0]
				if e.Name != "Carol" || e.Amount != 9.99 || e.Day != 3 || e.Reason != "museum" {
					t.Errorf("expense = %+v", e)
				}
			},
		},
		{
			name: "negative amount is accepted",
			input: "Name,Reason,Amount,Day\n" +
				"Alice,refund,-5.25,1\n",
			validateFunc: func(t *testing.T, expenses []models.Expense) {
				if expenses[0].Amount != -5.25 {
					t.Errorf("amount = %v, want -5.25", expenses[0].Amount)
				}
			},
		},
		{
			name:    "missing column",
			input:   "Name,Reason,Day\nAlice,beer,1\n",
			wantErr: true,
		},
		{
			name:    "non-numeric amount",
			input:   "Name,Reason,Amount,Day\nAlice,beer,twelve,1\n",
			wantErr: true,
		},
		{
			name:    "non-integer day",
			input:   "Name,Reason,Amount,Day\nAlice,beer,12,monday\n",
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   "Name,Reason,Amount,Day\n,beer,12,1\n",
			wantErr: true,
		},
		{
			name:    "header only",
			input:   "Name,Reason,Amount,Day\n",
			wantErr: true,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses, err := Load(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d expenses", len(expenses))
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, expenses)
			}
		})
	}
}

func TestLoadErrorsCarryRowNumber(t *testing.T) {
	input := "Name,Reason,Amount,Day\n" +
		"Alice,beer,12,1\n" +
		"Bob,wine,oops,1\n"

	_, err := Load(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for bad amount")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q does not name row 3", err)
	}
}

func TestLoadEmptyLedgerSentinel(t *testing.T) {
	_, err := Load(strings.NewReader("Name,Reason,Amount,Day\n"))
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}
