package sqlite

import (
	"context"
	"fmt"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// CreateGroupExpense persists a group expense with its splits.
func (s *SQLiteStore) CreateGroupExpense(ctx context.Context, expense *models.GroupExpense) error {
	assignIdentity(&expense.ID, &expense.CreatedAt)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO group_expenses (id, group_id, amount, category, description, paid_by, split_type, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.Amount, expense.Category, expense.Description,
		expense.PaidBy, string(expense.SplitKind), models.FormatDate(expense.Date), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group expense: %w", err)
	}

	for member, amount := range expense.Splits {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO group_expense_splits (expense_id, member, amount) VALUES (?, ?, ?)",
			expense.ID, member, amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListGroupExpenses retrieves all expenses of a group, newest date first.
func (s *SQLiteStore) ListGroupExpenses(ctx context.Context, groupID string) ([]models.GroupExpense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, amount, category, description, paid_by, split_type, date, created_at
		 FROM group_expenses WHERE group_id = ? ORDER BY date DESC, created_at DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.GroupExpense
	index := make(map[string]int)
	for rows.Next() {
		var (
			e         models.GroupExpense
			splitKind string
			date      string
		)
		if err := rows.Scan(&e.ID, &e.GroupID, &e.Amount, &e.Category, &e.Description,
			&e.PaidBy, &splitKind, &date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group expense: %w", err)
		}
		e.SplitKind = models.SplitKind(splitKind)
		if e.Date, err = scanDate(date); err != nil {
			return nil, err
		}
		e.Splits = make(map[string]float64)
		index[e.ID] = len(expenses)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group expenses: %w", err)
	}
	rows.Close()

	splitRows, err := s.db.QueryContext(ctx,
		`SELECT s.expense_id, s.member, s.amount
		 FROM group_expense_splits s
		 JOIN group_expenses e ON e.id = s.expense_id
		 WHERE e.group_id = ?`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var (
			expenseID, member string
			amount            float64
		)
		if err := splitRows.Scan(&expenseID, &member, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		if i, ok := index[expenseID]; ok {
			expenses[i].Splits[member] = amount
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return expenses, nil
}
