package ledger

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// DefaultCategory is used when an expense is submitted without one.
const DefaultCategory = "Other"

// ExpenseInput is an unvalidated personal expense, either typed by a user or
// drafted by receipt extraction.
type ExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        string
}

// GroupExpenseInput is an unvalidated group expense submission.
type GroupExpenseInput struct {
	GroupID     string
	Amount      float64
	Category    string
	Description string
	PaidBy      string
	SplitKind   models.SplitKind
	Splits      map[string]float64
	Date        string
}

// NormalizeCategory folds whitespace in a category label. All-lowercase labels
// are title-cased so "food " and "Food" aggregate together; any label with an
// upper-case letter ("iPhone", "ATM") is kept as typed.
func NormalizeCategory(category string) string {
	category = strings.Join(strings.Fields(category), " ")
	if category == "" {
		return DefaultCategory
	}
	if category != strings.ToLower(category) {
		return category
	}
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English).String(category)
}

// NewExpense validates in and returns the expense to persist. ID and
// CreatedAt are left for the store to assign.
func NewExpense(in ExpenseInput) (*models.Expense, error) {
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	return &models.Expense{
		Amount:      in.Amount,
		Category:    NormalizeCategory(in.Category),
		Description: strings.TrimSpace(in.Description),
		Date:        date,
	}, nil
}

// NewGroupExpense validates in against group and resolves its splits.
// A nil group reports models.ErrNotFound.
func NewGroupExpense(in GroupExpenseInput, group *models.Group) (*models.GroupExpense, error) {
	if group == nil {
		return nil, fmt.Errorf("%w: group %s", models.ErrNotFound, in.GroupID)
	}
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	if in.PaidBy == "" {
		return nil, fmt.Errorf("%w: paid_by is required", models.ErrInvalidInput)
	}
	if !group.HasMember(in.PaidBy) {
		return nil, fmt.Errorf("%w: paid_by %q must be a member of the group", models.ErrInvalidInput, in.PaidBy)
	}
	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	splits, err := ResolveSplits(SplitRequest{
		Amount: in.Amount,
		Kind:   in.SplitKind,
		Splits: in.Splits,
	}, group)
	if err != nil {
		return nil, err
	}

	return &models.GroupExpense{
		GroupID:     group.ID,
		Amount:      in.Amount,
		Category:    NormalizeCategory(in.Category),
		Description: strings.TrimSpace(in.Description),
		PaidBy:      in.PaidBy,
		SplitKind:   in.SplitKind,
		Splits:      splits,
		Date:        date,
	}, nil
}

// ValidateGroup checks a new group's name and member list.
func ValidateGroup(name string, members []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: group name is required", models.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("%w: member names cannot be blank", models.ErrInvalidInput)
		}
		if seen[m] {
			return fmt.Errorf("%w: duplicate member %q", models.ErrInvalidInput, m)
		}
		seen[m] = true
	}
	return nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive number", models.ErrInvalidInput)
	}
	return nil
}
