package ledger

import (
	"fmt"
	"strings"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// NewBudget validates a user-entered budget. An empty period means monthly.
func NewBudget(category string, limit float64, period string) (*models.Budget, error) {
	if err := validateAmount(limit); err != nil {
		return nil, fmt.Errorf("%w: limit must be a positive number", models.ErrInvalidInput)
	}
	period = strings.ToLower(strings.TrimSpace(period))
	if period == "" {
		period = models.PeriodMonthly
	}
	if period != models.PeriodMonthly {
		return nil, fmt.Errorf("%w: unsupported budget period %q", models.ErrInvalidInput, period)
	}

	return &models.Budget{
		Category: NormalizeCategory(category),
		Limit:    limit,
		Period:   period,
	}, nil
}
