package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jakobj/money-helsinki/internal/calculator"
	"github.com/jakobj/money-helsinki/internal/middleware"
	"github.com/jakobj/money-helsinki/internal/models"
)

type expenseInput struct {
	Name   string  `json:"name"`
	Reason string  `json:"reason"`
	Amount float64 `json:"amount"`
	Day    int     `json:"day"`
}

type addExpensesRequest struct {
	Expenses []expenseInput `json:"expenses"`
}

type expenseResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Reason string  `json:"reason"`
	Amount float64 `json:"amount"`
	Day    int     `json:"day"`
}

type balanceEntry struct {
	Name string `json:"name"`
	// Balance is fair share minus amount paid: positive owes, negative is
	// owed.
	Balance float64 `json:"balance"`
}

type transferResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type settlementResponse struct {
	Balances  []balanceEntry     `json:"balances"`
	Transfers []transferResponse `json:"transfers"`
}

func (s *ExpenseService) handleAddExpenses(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	var req addExpensesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Expenses) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("no expenses given"))
		return
	}

	expenses := make([]models.Expense, len(req.Expenses))
	for i, in := range req.Expenses {
		if in.Name == "" {
			writeError(w, http.StatusBadRequest, fmt.Errorf("expense %d: name is required", i+1))
			return
		}
		expenses[i] = models.Expense{Name: in.Name, Reason: in.Reason, Amount: in.Amount, Day: in.Day}
	}

	if _, err := s.store.GetGroup(r.Context(), groupID); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	if err := s.store.AddExpenses(r.Context(), groupID, expenses); err != nil {
		slog.Error("AddExpenses failed", "group_id", groupID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	slog.Info("Expenses recorded",
		"group_id", groupID,
		"count", len(expenses),
		"user_id", middleware.GetUserID(r.Context()),
	)

	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = expenseResponse{ID: e.ID, Name: e.Name, Reason: e.Reason, Amount: e.Amount, Day: e.Day}
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *ExpenseService) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	if _, err := s.store.GetGroup(r.Context(), groupID); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	expenses, err := s.store.ListExpenses(r.Context(), groupID)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", groupID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = expenseResponse{ID: e.ID, Name: e.Name, Reason: e.Reason, Amount: e.Amount, Day: e.Day}
	}
	writeJSON(w, http.StatusOK, out)
}

// groupBalances loads a group's ledger and runs the balance calculation.
func (s *ExpenseService) groupBalances(r *http.Request, groupID string) (*calculator.Balances, error) {
	expenses, err := s.store.ListExpenses(r.Context(), groupID)
	if err != nil {
		return nil, err
	}
	return calculator.ComputeBalances(expenses)
}

func balanceEntries(balances *calculator.Balances) []balanceEntry {
	entries := make([]balanceEntry, 0, balances.Len())
	for _, name := range balances.Names() {
		entries = append(entries, balanceEntry{Name: name, Balance: balances.Get(name)})
	}
	return entries
}

func (s *ExpenseService) handleBalances(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	if _, err := s.store.GetGroup(r.Context(), groupID); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	balances, err := s.groupBalances(r, groupID)
	if err != nil {
		slog.Error("Balance computation failed", "group_id", groupID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceEntries(balances))
}

// handleSettlement computes balances and the transfer plan in one shot.
// Nothing is stored; repeating the call recomputes from the ledger.
func (s *ExpenseService) handleSettlement(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	if _, err := s.store.GetGroup(r.Context(), groupID); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	balances, err := s.groupBalances(r, groupID)
	if err != nil {
		slog.Error("Balance computation failed", "group_id", groupID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	transfers, err := calculator.ComputeTransfers(balances)
	if err != nil {
		slog.Error("Settlement failed", "group_id", groupID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	out := settlementResponse{
		Balances:  balanceEntries(balances),
		Transfers: make([]transferResponse, len(transfers)),
	}
	for i, t := range transfers {
		out.Transfers[i] = transferResponse{From: t.From, To: t.To, Amount: t.Amount}
	}

	slog.Info("Settlement computed",
		"group_id", groupID,
		"participants", balances.Len(),
		"transfers", len(transfers),
	)
	writeJSON(w, http.StatusOK, out)
}
