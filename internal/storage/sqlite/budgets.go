package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertBudget(ctx context.Context, db execer, budget *models.Budget) error {
	assignIdentity(&budget.ID, &budget.CreatedAt)
	if budget.Period == "" {
		budget.Period = models.PeriodMonthly
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO budgets (id, category, limit_amount, period, ai_recommendation, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		budget.ID, budget.Category, budget.Limit, budget.Period, budget.AIRecommended, budget.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert budget: %w", err)
	}
	return nil
}

// CreateBudget persists a new budget.
func (s *SQLiteStore) CreateBudget(ctx context.Context, budget *models.Budget) error {
	return insertBudget(ctx, s.db, budget)
}

// ListBudgets retrieves all budgets, user budgets first, then by category.
func (s *SQLiteStore) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, limit_amount, period, ai_recommendation, created_at
		 FROM budgets ORDER BY ai_recommendation, category, created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.Category, &b.Limit, &b.Period, &b.AIRecommended, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}

	return budgets, nil
}

// deleteRecommendedBudgets removes every AI-recommended budget and returns
// how many were removed.
func deleteRecommendedBudgets(ctx context.Context, db execer) (int64, error) {
	res, err := db.ExecContext(ctx, "DELETE FROM budgets WHERE ai_recommendation = 1")
	if err != nil {
		return 0, fmt.Errorf("failed to delete recommended budgets: %w", err)
	}
	return res.RowsAffected()
}

// ReplaceAIRecommendedBudgets swaps the AI-recommended budgets for budgets atomically.
func (s *SQLiteStore) ReplaceAIRecommendedBudgets(ctx context.Context, budgets []*models.Budget) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := deleteRecommendedBudgets(ctx, tx); err != nil {
		return err
	}
	for _, b := range budgets {
		b.AIRecommended = true
		if err := insertBudget(ctx, tx, b); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
