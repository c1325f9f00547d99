package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jakobj/money-helsinki/internal/models"
)

// AddExpenses appends expense rows to a group's ledger.
func (s *SQLiteStore) AddExpenses(ctx context.Context, groupID string, expenses []models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for i := range expenses {
		expense := &expenses[i]
		if expense.ID == "" {
			expense.ID = uuid.New().String()
		}
		if expense.CreatedAt == 0 {
			expense.CreatedAt = now
		}
		expense.GroupID = groupID

		_, err = tx.ExecContext(ctx,
			"INSERT INTO expenses (id, group_id, name, reason, amount, day, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			expense.ID, expense.GroupID, expense.Name, expense.Reason, expense.Amount, expense.Day, expense.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert expense: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListExpenses returns a group's expense rows in insertion order. The rowid
// order is the order rows were appended, which is the ledger order the
// calculator iterates.
func (s *SQLiteStore) ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, group_id, name, reason, amount, day, created_at FROM expenses WHERE group_id = ? ORDER BY rowid",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.GroupID, &e.Name, &e.Reason, &e.Amount, &e.Day, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}
