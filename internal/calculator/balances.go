// Package calculator computes net balances from a ledger of shared expenses
// and the transfers that settle them.
//
// Sign convention: a balance is accumulated as fair share minus amount paid,
// so a positive balance means the participant underpaid and owes money, a
// negative balance means they overpaid and are owed. The sum of all balances
// is zero within Tolerance at every step; money is conserved.
package calculator

import (
	"fmt"

	"github.com/jakobj/money-helsinki/internal/models"
)

// Balances is a mapping from participant name to net balance that preserves
// first-appearance order. Go maps iterate in random order; the settlement
// solver needs a deterministic one, so the distinct names are tracked
// separately.
type Balances struct {
	order   []string
	amounts map[string]float64
}

// NewBalances returns an empty balance mapping.
func NewBalances() *Balances {
	return &Balances{amounts: make(map[string]float64)}
}

// Add accumulates delta onto name's balance, registering the name on first
// touch.
func (b *Balances) Add(name string, delta float64) {
	if _, ok := b.amounts[name]; !ok {
		b.order = append(b.order, name)
	}
	b.amounts[name] += delta
}

// Get returns name's balance, or 0 for an unknown name.
func (b *Balances) Get(name string) float64 {
	return b.amounts[name]
}

// Names returns the participant names in first-appearance order.
func (b *Balances) Names() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}

// Len returns the number of participants.
func (b *Balances) Len() int {
	return len(b.order)
}

// Sum returns the sum of all balances. Zero within Tolerance for any mapping
// produced by ComputeBalances.
func (b *Balances) Sum() float64 {
	var sum float64
	for _, name := range b.order {
		sum += b.amounts[name]
	}
	return sum
}

// Clone returns an independent copy. The settlement solver drains a clone so
// the caller's mapping survives.
func (b *Balances) Clone() *Balances {
	c := &Balances{
		order:   make([]string, len(b.order)),
		amounts: make(map[string]float64, len(b.amounts)),
	}
	copy(c.order, b.order)
	for name, amount := range b.amounts {
		c.amounts[name] = amount
	}
	return c
}

// ComputeBalances computes each participant's net balance across all days of
// the ledger.
//
// Rows are grouped by day. For each day, everyone with at least one row is
// present; the day's total is split equally among those present, and each of
// them accumulates fair share minus what they actually paid. Participants
// absent on a day are unaffected by it, which is what allows non-uniform
// participation.
//
// The returned mapping contains exactly the names appearing in the ledger,
// in first-appearance order. After every day the running balances must sum
// to zero within Tolerance; a violation returns ErrInvariant.
//
// A day with rows always has at least one present participant, so the fair
// share division cannot divide by zero under a well-formed ledger.
func ComputeBalances(ledger []models.Expense) (*Balances, error) {
	balances := NewBalances()

	// paid[day][name] accumulates per-day payments; days and presence keep
	// first-appearance iteration order.
	paid := make(map[int]map[string]float64)
	presence := make(map[int][]string)
	var days []int

	for _, row := range ledger {
		byName, ok := paid[row.Day]
		if !ok {
			byName = make(map[string]float64)
			paid[row.Day] = byName
			days = append(days, row.Day)
		}
		if _, seen := byName[row.Name]; !seen {
			presence[row.Day] = append(presence[row.Day], row.Name)
		}
		byName[row.Name] += row.Amount
		balances.Add(row.Name, 0)
	}

	for _, day := range days {
		present := presence[day]
		var total float64
		for _, name := range present {
			total += paid[day][name]
		}
		fairShare := total / float64(len(present))

		for _, name := range present {
			balances.Add(name, fairShare-paid[day][name])
		}

		if sum := balances.Sum(); !negligible(sum) {
			return nil, fmt.Errorf("%w: balances sum to %g after day %d, want 0", ErrInvariant, sum, day)
		}
	}

	return balances, nil
}
