package calculator

import (
	"math"
	"testing"

	"github.com/jakobj/money-helsinki/internal/models"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		ledger       []models.Expense
		validateFunc func(t *testing.T, balances *Balances)
	}{
		{
			name: "single day uniform split",
			ledger: []models.Expense{
				{Name: "Alice", Reason: "dinner", Amount: 10, Day: 1},
				{Name: "Bob", Reason: "nothing", Amount: 0, Day: 1},
			},
			validateFunc: func(t *testing.T, balances *Balances) {
				// Fair share is 5 each: Alice overpaid by 5, Bob owes 5.
				if got := balances.Get("Alice"); !approxEqual(got, -5) {
					t.Errorf("Alice balance = %v, want -5", got)
				}
				if got := balances.Get("Bob"); !approxEqual(got, 5) {
					t.Errorf("Bob balance = %v, want 5", got)
				}
			},
		},
		{
			name: "non-uniform participation across days",
			ledger: []models.Expense{
				{Name: "Alice", Amount: 30, Day: 1},
				{Name: "Bob", Amount: 0, Day: 1},
				{Name: "Alice", Amount: 0, Day: 2},
				{Name: "Carol", Amount: 20, Day: 2},
			},
			validateFunc: func(t *testing.T, balances *Balances) {
				// Day 1: fair share 15 -> Alice -15, Bob +15.
				// Day 2: fair share 10 -> Alice +10, Carol -10.
				want := map[string]float64{"Alice": -5, "Bob": 15, "Carol": -10}
				for name, amount := range want {
					if got := balances.Get(name); !approxEqual(got, amount) {
						t.Errorf("%s balance = %v, want %v", name, got, amount)
					}
				}
			},
		},
		{
			name: "amounts accumulate per name and day",
			ledger: []models.Expense{
				{Name: "Alice", Reason: "taxi", Amount: 12, Day: 3},
				{Name: "Alice", Reason: "tickets", Amount: 8, Day: 3},
				{Name: "Bob", Reason: "coffee", Amount: 4, Day: 3},
			},
			validateFunc: func(t *testing.T, balances *Balances) {
				// Alice paid 20 in two rows, Bob 4; fair share 12.
				if got := balances.Get("Alice"); !approxEqual(got, -8) {
					t.Errorf("Alice balance = %v, want -8", got)
				}
				if got := balances.Get("Bob"); !approxEqual(got, 8) {
					t.Errorf("Bob balance = %v, want 8", got)
				}
			},
		},
		{
			name: "absent participant is unaffected by a day",
			ledger: []models.Expense{
				{Name: "Alice", Amount: 10, Day: 1},
				{Name: "Bob", Amount: 10, Day: 1},
				{Name: "Carol", Amount: 9, Day: 2},
			},
			validateFunc: func(t *testing.T, balances *Balances) {
				// Day 1 is already even; Carol alone on day 2 owes nothing.
				for _, name := range []string{"Alice", "Bob", "Carol"} {
					if got := balances.Get(name); !approxEqual(got, 0) {
						t.Errorf("%s balance = %v, want 0", name, got)
					}
				}
			},
		},
		{
			name:   "empty ledger yields empty mapping",
			ledger: nil,
			validateFunc: func(t *testing.T, balances *Balances) {
				if balances.Len() != 0 {
					t.Errorf("Len() = %d, want 0", balances.Len())
				}
			},
		},
		{
			name: "three-way split with repeating fraction",
			ledger: []models.Expense{
				{Name: "Alice", Amount: 10, Day: 1},
				{Name: "Bob", Amount: 0, Day: 1},
				{Name: "Carol", Amount: 0, Day: 1},
			},
			validateFunc: func(t *testing.T, balances *Balances) {
				if got := balances.Get("Alice"); !approxEqual(got, -20.0/3.0) {
					t.Errorf("Alice balance = %v, want %v", got, -20.0/3.0)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances(tt.ledger)
			if err != nil {
				t.Fatalf("ComputeBalances failed: %v", err)
			}

			// Money is conserved on every ledger.
			if sum := balances.Sum(); math.Abs(sum) > Tolerance {
				t.Errorf("balances sum = %g, want 0 within %g", sum, Tolerance)
			}

			if tt.validateFunc != nil {
				tt.validateFunc(t, balances)
			}
		})
	}
}

func TestComputeBalancesNameSet(t *testing.T) {
	ledger := []models.Expense{
		{Name: "Carol", Amount: 5, Day: 2},
		{Name: "Alice", Amount: 10, Day: 1},
		{Name: "Bob", Amount: 0, Day: 1},
		{Name: "Alice", Amount: 3, Day: 2},
	}

	balances, err := ComputeBalances(ledger)
	if err != nil {
		t.Fatalf("ComputeBalances failed: %v", err)
	}

	// Exactly the ledger's names, in first-appearance order.
	want := []string{"Carol", "Alice", "Bob"}
	got := balances.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBalancesClone(t *testing.T) {
	balances := NewBalances()
	balances.Add("Alice", 5)
	balances.Add("Bob", -5)

	clone := balances.Clone()
	clone.Add("Alice", -5)
	clone.Add("Carol", 1)

	if got := balances.Get("Alice"); got != 5 {
		t.Errorf("original Alice balance = %v after mutating clone, want 5", got)
	}
	if balances.Len() != 2 {
		t.Errorf("original Len() = %d after mutating clone, want 2", balances.Len())
	}
}
