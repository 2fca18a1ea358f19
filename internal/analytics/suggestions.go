package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// genericSuggestions are returned when there is nothing to personalize or a
// rule fails.
var genericSuggestions = []string{
	"Track your daily expenses to identify spending patterns.",
	"Review subscriptions and cancel unused ones.",
	"Cook at home more often to reduce food costs.",
	"Set specific budget limits per category.",
}

// GenericSuggestions returns a copy of the non-personalized fallback list.
func GenericSuggestions() []string {
	out := make([]string, len(genericSuggestions))
	copy(out, genericSuggestions)
	return out
}

// Suggestions runs Suggestions with DefaultPolicy.
func Suggestions(expenses []models.Expense) []string {
	return DefaultPolicy().Suggestions(expenses)
}

// Suggestions turns the most recent expenses into up to MaxSuggestions tips.
// Rules are evaluated in a fixed order and each contributes at most one line:
//
//  1. the category with the highest total
//  2. the count and total of small purchases, when there are many
//  3. a habit reset when the discretionary category runs high
//  4. average spend per distinct day (always)
//
// Empty or malformed input yields GenericSuggestions.
func (p Policy) Suggestions(expenses []models.Expense) (out []string) {
	defer recoverAdvisory("suggestions", func() { out = GenericSuggestions() })

	if len(expenses) == 0 {
		return GenericSuggestions()
	}

	tips, err := p.suggestions(expenses)
	if err != nil {
		logAdvisory(err)
		return GenericSuggestions()
	}
	return tips
}

func (p Policy) suggestions(expenses []models.Expense) ([]string, error) {
	sample := newestFirst(expenses, p.SuggestionSampleSize)
	pr := message.NewPrinter(language.English)

	categoryTotals := make(map[string]decimal.Decimal)
	total := decimal.Zero
	days := make(map[string]bool)
	for _, e := range sample {
		if err := checkExpense("suggestions", e); err != nil {
			return nil, err
		}
		amount := decimal.NewFromFloat(e.Amount)
		categoryTotals[e.Category] = categoryTotals[e.Category].Add(amount)
		total = total.Add(amount)
		days[models.FormatDate(e.Date)] = true
	}

	var tips []string

	if category, amount, ok := highestCategory(categoryTotals); ok {
		tips = append(tips, pr.Sprintf("Your highest spending is in %s (%s%.2f). Consider setting a limit.",
			category, p.CurrencySymbol, amount))
	}

	smallCount := 0
	smallTotal := decimal.Zero
	for _, e := range sample {
		if e.Amount < p.SmallPurchaseThreshold {
			smallCount++
			smallTotal = smallTotal.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	if smallCount > p.SmallPurchaseMinCount {
		tips = append(tips, pr.Sprintf("You have %d small purchases totaling %s%.2f. These add up quickly!",
			smallCount, p.CurrencySymbol, smallTotal.InexactFloat64()))
	}

	if spent, ok := categoryTotals[p.DiscretionaryCategory]; ok && spent.InexactFloat64() > p.DiscretionaryThreshold {
		tips = append(tips, pr.Sprintf("%s is trending high. Try a no-subscription week to reset habits.",
			p.DiscretionaryCategory))
	}

	avgDaily := total.Div(decimal.NewFromInt(int64(len(days)))).InexactFloat64()
	tips = append(tips, pr.Sprintf("Your average daily spend is %s%.0f. A daily cap can help rein it in.",
		p.CurrencySymbol, avgDaily))

	if len(tips) > p.MaxSuggestions {
		tips = tips[:p.MaxSuggestions]
	}
	return tips, nil
}

// newestFirst returns at most limit expenses, most recent date first.
func newestFirst(expenses []models.Expense, limit int) []models.Expense {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// highestCategory picks the largest total; ties go to the earlier name.
func highestCategory(totals map[string]decimal.Decimal) (string, float64, bool) {
	var (
		best   string
		amount decimal.Decimal
		found  bool
	)
	for category, total := range totals {
		if !found || total.GreaterThan(amount) || (total.Equal(amount) && category < best) {
			best, amount, found = category, total, true
		}
	}
	return best, amount.InexactFloat64(), found
}
