package ledger

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"food", "Food"},
		{"  food   delivery ", "Food Delivery"},
		{"Entertainment", "Entertainment"},
		{"iPhone", "iPhone"},
		{"ATM  fees", "ATM fees"},
		{"eating OUT", "eating OUT"},
		{"café", "Café"},
		{"", "Other"},
		{"   ", "Other"},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewExpense(t *testing.T) {
	t.Run("valid input is normalized", func(t *testing.T) {
		exp, err := NewExpense(ExpenseInput{
			Amount:      250.5,
			Category:    "transport",
			Description: "  Metro card ",
			Date:        "2024-03-05T10:00:00Z",
		})
		if err != nil {
			t.Fatalf("NewExpense failed: %v", err)
		}
		if exp.Category != "Transport" {
			t.Errorf("category = %q, want Transport", exp.Category)
		}
		if exp.Description != "Metro card" {
			t.Errorf("description = %q", exp.Description)
		}
		if !exp.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("date = %v, want 2024-03-05", exp.Date)
		}
	})

	invalid := []ExpenseInput{
		{Amount: 0, Category: "Food", Date: "2024-03-05"},
		{Amount: -10, Category: "Food", Date: "2024-03-05"},
		{Amount: math.NaN(), Category: "Food", Date: "2024-03-05"},
		{Amount: 10, Category: "Food", Date: "yesterday"},
		{Amount: 10, Category: "Food", Date: ""},
	}
	for _, in := range invalid {
		if _, err := NewExpense(in); !errors.Is(err, models.ErrInvalidInput) {
			t.Errorf("NewExpense(%+v) error = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestNewGroupExpense(t *testing.T) {
	group := &models.Group{ID: "g1", Name: "Trip", Members: []string{"Alice", "Bob", "Carol"}}

	t.Run("equal split over members", func(t *testing.T) {
		exp, err := NewGroupExpense(GroupExpenseInput{
			GroupID:   "g1",
			Amount:    100,
			Category:  "food",
			PaidBy:    "Alice",
			SplitKind: models.SplitEqual,
			Date:      "2024-03-05",
		}, group)
		if err != nil {
			t.Fatalf("NewGroupExpense failed: %v", err)
		}
		if len(exp.Splits) != 3 || exp.Splits["Bob"] != 33.33 {
			t.Errorf("splits = %v", exp.Splits)
		}
		if exp.GroupID != "g1" || exp.Category != "Food" {
			t.Errorf("unexpected expense %+v", exp)
		}
	})

	t.Run("missing group is not found", func(t *testing.T) {
		_, err := NewGroupExpense(GroupExpenseInput{
			GroupID:   "missing",
			Amount:    100,
			PaidBy:    "Alice",
			SplitKind: models.SplitCustom,
			Date:      "2024-03-05",
		}, nil)
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("payer must be a member", func(t *testing.T) {
		_, err := NewGroupExpense(GroupExpenseInput{
			GroupID:   "g1",
			Amount:    100,
			PaidBy:    "Mallory",
			SplitKind: models.SplitEqual,
			Date:      "2024-03-05",
		}, group)
		if !errors.Is(err, models.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestValidateGroup(t *testing.T) {
	if err := ValidateGroup("Flat", []string{"Alice", "Bob"}); err != nil {
		t.Errorf("valid group rejected: %v", err)
	}
	if err := ValidateGroup(" ", []string{"Alice"}); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("blank name: got %v", err)
	}
	if err := ValidateGroup("Flat", []string{"Alice", "Alice"}); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("duplicate member: got %v", err)
	}
	if err := ValidateGroup("Flat", []string{"Alice", ""}); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("blank member: got %v", err)
	}
}
