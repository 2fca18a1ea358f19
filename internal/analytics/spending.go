package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// CategorySummary maps category to total spend over a window.
type CategorySummary map[string]float64

// CategorySpend is one row of a CategorySummary.
type CategorySpend struct {
	Category string
	Amount   float64
}

// Total sums every category.
func (s CategorySummary) Total() float64 {
	total := decimal.Zero
	for _, amount := range s {
		total = total.Add(decimal.NewFromFloat(amount))
	}
	return total.InexactFloat64()
}

// Sorted returns the rows largest first, ties broken by category name.
func (s CategorySummary) Sorted() []CategorySpend {
	rows := make([]CategorySpend, 0, len(s))
	for category, amount := range s {
		rows = append(rows, CategorySpend{Category: category, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// WindowStart returns the first calendar day included in a window of
// windowDays ending at now.
func WindowStart(now time.Time, windowDays int) time.Time {
	return models.Day(now).AddDate(0, 0, -windowDays)
}

// CategorySpending sums expenses per category for every expense dated on or
// after now minus windowDays.
func CategorySpending(expenses []models.Expense, windowDays int, now time.Time) CategorySummary {
	cutoff := WindowStart(now, windowDays)

	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if models.Day(e.Date).Before(cutoff) {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(decimal.NewFromFloat(e.Amount))
	}

	summary := make(CategorySummary, len(totals))
	for category, total := range totals {
		summary[category] = total.InexactFloat64()
	}
	return summary
}
