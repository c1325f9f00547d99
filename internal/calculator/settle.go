package calculator

import (
	"fmt"
	"math"
	"sort"

	"github.com/jakobj/money-helsinki/internal/models"
)

// ComputeTransfers produces the payments that settle every balance to zero.
//
// Participants are partitioned into payers (positive balance, owe money) and
// receivers (negative balance, are owed), both in the mapping's insertion
// order; near-zero balances land in neither list. A nested greedy loop then
// matches each payer against the receivers in order: the transfer amount is
// the smaller of what the payer still owes and what the receiver is still
// owed, so a payer may be drained across several receivers and a receiver's
// remaining credit carries over to later payers.
//
// At most one transfer is kept per ordered (From, To) pair; if a pair were
// ever matched twice the later amount would replace the earlier one. The
// input mapping is not modified; the solver drains a clone.
//
// Returns ErrInvariant if a computed amount is negative or if any residual
// balance exceeds Tolerance after all pairs are processed. Total credit
// equals total debit for any zero-sum input, so full settlement is
// guaranteed for mappings produced by ComputeBalances.
//
// Transfers are returned sorted by (From, To) for stable presentation.
func ComputeTransfers(balances *Balances) ([]models.Transfer, error) {
	work := balances.Clone()

	var payers, receivers []string
	for _, name := range work.Names() {
		switch amount := work.Get(name); {
		case amount > Tolerance:
			payers = append(payers, name)
		case amount < -Tolerance:
			receivers = append(receivers, name)
		}
	}

	var transfers []models.Transfer
	byPair := make(map[[2]string]int, len(payers)*len(receivers))

	for _, payer := range payers {
		for _, receiver := range receivers {
			amount := math.Min(work.Get(payer), -work.Get(receiver))
			if amount < 0 {
				return nil, fmt.Errorf("%w: negative transfer amount %g for %s -> %s",
					ErrInvariant, amount, payer, receiver)
			}
			if amount <= Tolerance {
				continue
			}

			work.Add(payer, -amount)
			work.Add(receiver, amount)

			pair := [2]string{payer, receiver}
			if i, ok := byPair[pair]; ok {
				transfers[i].Amount = amount
			} else {
				byPair[pair] = len(transfers)
				transfers = append(transfers, models.Transfer{From: payer, To: receiver, Amount: amount})
			}
		}
	}

	for _, name := range work.Names() {
		if residual := work.Get(name); !negligible(residual) {
			return nil, fmt.Errorf("%w: %s left with residual balance %g after settlement",
				ErrInvariant, name, residual)
		}
	}

	sort.Slice(transfers, func(i, j int) bool {
		if transfers[i].From != transfers[j].From {
			return transfers[i].From < transfers[j].From
		}
		return transfers[i].To < transfers[j].To
	})

	return transfers, nil
}
