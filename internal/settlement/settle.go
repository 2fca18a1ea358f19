// Package settlement reduces group balances to a short list of transfers.
package settlement

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Epsilon is the currency tolerance below which a balance counts as settled.
const Epsilon = 0.01

var epsilon = decimal.NewFromFloat(Epsilon)

// Transfer is one payment from a debtor to a creditor.
type Transfer struct {
	From   string  // Member who owes
	To     string  // Member who is owed
	Amount float64 // Rounded to cents
}

// Result pairs the transfers with the balances they were computed from, so
// callers can display both.
type Result struct {
	Balances  map[string]float64
	Transfers []Transfer
}

type position struct {
	member string
	amount decimal.Decimal // always positive: remaining debt or credit
}

// Settle matches debtors with creditors greedily.
//
// Algorithm:
//   - members above +Epsilon are creditors, below -Epsilon are debtors;
//     anything in between is already settled
//   - creditors and debtors are each ordered by member name
//   - for each debtor in order, pay creditors in order the smaller of the
//     remaining debt and remaining credit
//   - a creditor drops out once its remaining credit is at most Epsilon, and
//     a debtor stops paying once its remaining debt is at most Epsilon
//
// The transfer count is small but not guaranteed minimal. Amounts are tracked
// exactly; each transfer is rounded to cents and the rounded amount is what
// both sides are reduced by.
func Settle(balances map[string]float64) Result {
	var creditors, debtors []*position
	for member, bal := range balances {
		amount := decimal.NewFromFloat(bal)
		switch {
		case amount.GreaterThan(epsilon):
			creditors = append(creditors, &position{member: member, amount: amount})
		case amount.LessThan(epsilon.Neg()):
			debtors = append(debtors, &position{member: member, amount: amount.Neg()})
		}
	}
	sortByMember(creditors)
	sortByMember(debtors)

	transfers := []Transfer{}
	for _, debtor := range debtors {
		for _, creditor := range creditors {
			if debtor.amount.LessThanOrEqual(epsilon) {
				break
			}
			if creditor.amount.LessThanOrEqual(epsilon) {
				continue // already paid off by an earlier debtor
			}

			// Both sides move by the cent amount actually paid, so rounding
			// never accumulates on one member.
			pay := decimal.Min(debtor.amount, creditor.amount).Round(2)
			transfers = append(transfers, Transfer{
				From:   debtor.member,
				To:     creditor.member,
				Amount: pay.InexactFloat64(),
			})
			debtor.amount = debtor.amount.Sub(pay)
			creditor.amount = creditor.amount.Sub(pay)
		}
	}

	return Result{Balances: balances, Transfers: transfers}
}

// Apply returns a copy of balances with every transfer applied: the payer's
// balance rises and the receiver's falls by the transferred amount.
func Apply(balances map[string]float64, transfers []Transfer) map[string]float64 {
	out := make(map[string]decimal.Decimal, len(balances))
	for m, b := range balances {
		out[m] = decimal.NewFromFloat(b)
	}
	for _, t := range transfers {
		amount := decimal.NewFromFloat(t.Amount)
		out[t.From] = out[t.From].Add(amount)
		out[t.To] = out[t.To].Sub(amount)
	}

	result := make(map[string]float64, len(out))
	for m, d := range out {
		result[m] = d.InexactFloat64()
	}
	return result
}

func sortByMember(positions []*position) {
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].member < positions[j].member
	})
}
