package analytics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// GenerateBudgets runs GenerateBudgets with DefaultPolicy.
func GenerateBudgets(summary CategorySummary) []models.Budget {
	return DefaultPolicy().GenerateBudgets(summary)
}

// GenerateBudgets recommends a monthly limit for every category with spending:
// the larger of current spend grown by BudgetGrowthFactor and the category's
// floor, rounded to cents. Drafts are ordered by category and carry no ID.
// Any failure yields an empty list.
func (p Policy) GenerateBudgets(summary CategorySummary) (out []models.Budget) {
	defer recoverAdvisory("budgets", func() { out = []models.Budget{} })

	budgets, err := p.generateBudgets(summary)
	if err != nil {
		logAdvisory(err)
		return []models.Budget{}
	}
	return budgets
}

func (p Policy) generateBudgets(summary CategorySummary) ([]models.Budget, error) {
	categories := make([]string, 0, len(summary))
	for category := range summary {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	growth := decimal.NewFromFloat(p.BudgetGrowthFactor)
	budgets := make([]models.Budget, 0, len(categories))
	for _, category := range categories {
		spend := summary[category]
		if math.IsNaN(spend) || math.IsInf(spend, 0) || spend < 0 {
			return nil, advisoryf("budgets", "category %q has invalid spend %v", category, spend)
		}
		if spend == 0 {
			continue
		}

		limit := decimal.Max(
			decimal.NewFromFloat(spend).Mul(growth),
			decimal.NewFromFloat(p.CategoryFloor(category)),
		).Round(2)

		budgets = append(budgets, models.Budget{
			Category:      category,
			Limit:         limit.InexactFloat64(),
			Period:        models.PeriodMonthly,
			AIRecommended: true,
		})
	}
	return budgets, nil
}
