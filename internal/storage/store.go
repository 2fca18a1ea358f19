// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"time"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// ExpenseQuery narrows ListExpenses.
type ExpenseQuery struct {
	// Since keeps expenses dated on or after this day. Zero means no lower bound.
	Since time.Time

	// Limit caps the number of results. Zero means no cap.
	Limit int
}

// Store defines the record store the services read and write through.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Lookups of missing records return an error wrapping models.ErrNotFound.
// Create methods fill in ID and CreatedAt when they are unset.
type Store interface {
	// CreateExpense persists a new personal expense.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns expenses newest date first.
	ListExpenses(ctx context.Context, q ExpenseQuery) ([]models.Expense, error)

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateGroup persists a new group with its members.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group and its members by ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups.
	ListGroups(ctx context.Context) ([]models.Group, error)

	// CreateGroupExpense persists a group expense and its splits.
	CreateGroupExpense(ctx context.Context, expense *models.GroupExpense) error

	// ListGroupExpenses returns every expense of a group, newest date first.
	// The result is a snapshot; a concurrent insert may not be included.
	ListGroupExpenses(ctx context.Context, groupID string) ([]models.GroupExpense, error)

	// CreateBudget persists a single budget.
	CreateBudget(ctx context.Context, budget *models.Budget) error

	// ListBudgets retrieves all budgets.
	ListBudgets(ctx context.Context) ([]models.Budget, error)

	// ReplaceAIRecommendedBudgets deletes every AI-recommended budget and
	// inserts budgets in a single transaction. User budgets are untouched.
	ReplaceAIRecommendedBudgets(ctx context.Context, budgets []*models.Budget) error

	// Close releases any resources held by the store.
	Close() error
}
