package sqlite

import (
	"context"
	"fmt"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
	"github.com/marilyndevx/FinFusion-V1/internal/storage"
)

// CreateExpense persists a new expense to the database.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	assignIdentity(&expense.ID, &expense.CreatedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, amount, category, description, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Amount, expense.Category, expense.Description,
		models.FormatDate(expense.Date), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves expenses newest date first, optionally bounded by q.
func (s *SQLiteStore) ListExpenses(ctx context.Context, q storage.ExpenseQuery) ([]models.Expense, error) {
	query := `SELECT id, amount, category, description, date, created_at FROM expenses`
	var args []any
	if !q.Since.IsZero() {
		query += ` WHERE date >= ?`
		args = append(args, models.FormatDate(q.Since))
	}
	query += ` ORDER BY date DESC, created_at DESC`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var (
			e    models.Expense
			date string
		)
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if e.Date, err = scanDate(date); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted expense: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, models.ErrNotFound)
	}
	return nil
}
