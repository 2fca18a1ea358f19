package models

// PeriodMonthly is the only budget period currently supported.
const PeriodMonthly = "monthly"

// Budget is a spending cap for one category.
//
// AI-recommended budgets are replaced wholesale every time recommendations are
// regenerated. User-entered budgets are never touched by regeneration.
type Budget struct {
	ID       string
	Category string
	Limit    float64
	Period   string

	// AIRecommended marks budgets produced by the recommendation heuristic.
	AIRecommended bool

	CreatedAt int64
}
