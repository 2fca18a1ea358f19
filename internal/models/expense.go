package models

import "time"

// Expense is a single personal expense. Expenses are never updated; they are
// created on submission and deleted by ID.
type Expense struct {
	ID          string
	Amount      float64
	Category    string
	Description string

	// Date is the calendar day the money was spent.
	Date time.Time

	CreatedAt int64
}

// SplitKind selects how a group expense is divided among members.
type SplitKind string

const (
	// SplitEqual divides the amount evenly across all current group members.
	SplitEqual SplitKind = "equal"
	// SplitCustom uses caller-supplied per-member amounts as-is.
	SplitCustom SplitKind = "custom"
)

// Valid reports whether k is a known split kind.
func (k SplitKind) Valid() bool {
	return k == SplitEqual || k == SplitCustom
}

// GroupExpense is an expense paid by one member of a group on behalf of others.
type GroupExpense struct {
	ID          string
	GroupID     string
	Amount      float64
	Category    string
	Description string

	// PaidBy is the member name of the payer.
	PaidBy string

	SplitKind SplitKind

	// Splits maps member name to the amount that member owes for this expense.
	// The payer may appear here too; their own share nets out in the balance.
	Splits map[string]float64

	Date      time.Time
	CreatedAt int64
}
