// Command settleup reads a CSV ledger of shared expenses and prints each
// participant's net balance and the transfers that settle the group.
//
// Usage:
//
//	settleup ledger.csv
//
// The ledger needs a header row with Name, Reason, Amount and Day columns.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jakobj/money-helsinki/internal/calculator"
	"github.com/jakobj/money-helsinki/internal/ledger"
	"github.com/jakobj/money-helsinki/pkg/logging"
)

func main() {
	logging.Setup()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s <ledger.csv>\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Computes net balances and settlement transfers for a shared-expense ledger.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		slog.Error("Settlement failed", "error", err)
		os.Exit(1)
	}
}

func run(path string) error {
	expenses, err := ledger.LoadFile(path)
	if err != nil {
		return err
	}
	slog.Debug("Ledger loaded", "path", path, "rows", len(expenses))

	balances, err := calculator.ComputeBalances(expenses)
	if err != nil {
		return err
	}

	fmt.Println("Balances:")
	for _, name := range balances.Names() {
		fmt.Printf("  %s %.2f\n", name, balances.Get(name))
	}

	transfers, err := calculator.ComputeTransfers(balances)
	if err != nil {
		return err
	}

	fmt.Println("Transfers:")
	for _, t := range transfers {
		fmt.Printf("  %s -> %s %.2f\n", t.From, t.To, t.Amount)
	}
	return nil
}
