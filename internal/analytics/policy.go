// Package analytics derives spending summaries, suggestions, recommended
// budgets and a short-horizon forecast from expense history.
//
// Everything here is advisory. Failures inside the heuristics are logged and
// degrade to a documented safe default instead of reaching the caller.
package analytics

const (
	CurrencySymbol = "₹"

	DefaultWindowDays           = 30
	DefaultSuggestionSampleSize = 50
	MaxSuggestions              = 4

	// A purchase strictly below SmallPurchaseThreshold is "small"; the
	// small-purchase suggestion fires when there are more than
	// SmallPurchaseMinCount of them in the sample.
	SmallPurchaseThreshold = 200.0
	SmallPurchaseMinCount  = 10

	DiscretionaryCategory  = "Entertainment"
	DiscretionaryThreshold = 3000.0

	BudgetGrowthFactor = 1.12
	DefaultBudgetFloor = 500.0

	DefaultForecastLookbackDays = 90
	DefaultForecastHorizonDays  = 30
	MinForecastDays             = 7

	// TrendSlopeThreshold is in currency units per day.
	TrendSlopeThreshold = 50.0
)

// defaultCategoryFloors are the minimum monthly budget limits per category.
var defaultCategoryFloors = map[string]float64{
	"Food":          2000,
	"Transport":     1000,
	"Shopping":      1500,
	"Entertainment": 1000,
	"Utilities":     1500,
	"Healthcare":    1000,
}

// Policy holds the thresholds the heuristics run with.
type Policy struct {
	CurrencySymbol string

	SuggestionSampleSize   int
	MaxSuggestions         int
	SmallPurchaseThreshold float64
	SmallPurchaseMinCount  int
	DiscretionaryCategory  string
	DiscretionaryThreshold float64

	BudgetGrowthFactor float64
	CategoryFloors     map[string]float64
	DefaultBudgetFloor float64

	ForecastLookbackDays int
	MinForecastDays      int
	TrendSlopeThreshold  float64
}

// DefaultPolicy returns the production thresholds.
func DefaultPolicy() Policy {
	floors := make(map[string]float64, len(defaultCategoryFloors))
	for k, v := range defaultCategoryFloors {
		floors[k] = v
	}

	return Policy{
		CurrencySymbol:         CurrencySymbol,
		SuggestionSampleSize:   DefaultSuggestionSampleSize,
		MaxSuggestions:         MaxSuggestions,
		SmallPurchaseThreshold: SmallPurchaseThreshold,
		SmallPurchaseMinCount:  SmallPurchaseMinCount,
		DiscretionaryCategory:  DiscretionaryCategory,
		DiscretionaryThreshold: DiscretionaryThreshold,
		BudgetGrowthFactor:     BudgetGrowthFactor,
		CategoryFloors:         floors,
		DefaultBudgetFloor:     DefaultBudgetFloor,
		ForecastLookbackDays:   DefaultForecastLookbackDays,
		MinForecastDays:        MinForecastDays,
		TrendSlopeThreshold:    TrendSlopeThreshold,
	}
}

// CategoryFloor returns the minimum budget for category.
func (p Policy) CategoryFloor(category string) float64 {
	if floor, ok := p.CategoryFloors[category]; ok {
		return floor
	}
	return p.DefaultBudgetFloor
}
