package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// ComputeBalances nets a group's expenses into one signed amount per member.
// Positive means the group owes the member, negative means the member owes
// the group.
//
// Algorithm:
//   - the payer is credited the full amount of each expense
//   - every split recipient is debited their split, including the payer
//
// Sums are kept in exact decimal arithmetic, so the result does not depend on
// the order of expenses.
func ComputeBalances(expenses []models.GroupExpense) map[string]float64 {
	totals := make(map[string]decimal.Decimal)

	for _, exp := range expenses {
		totals[exp.PaidBy] = totals[exp.PaidBy].Add(decimal.NewFromFloat(exp.Amount))
		for member, owed := range exp.Splits {
			totals[member] = totals[member].Sub(decimal.NewFromFloat(owed))
		}
	}

	balances := make(map[string]float64, len(totals))
	for member, total := range totals {
		balances[member] = total.InexactFloat64()
	}
	return balances
}
