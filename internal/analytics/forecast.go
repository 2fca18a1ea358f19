package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// Trend classifies the fitted slope of daily spending.
type Trend string

const (
	TrendIncreasing       Trend = "increasing"
	TrendDecreasing       Trend = "decreasing"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
	TrendError            Trend = "error"
)

// ForecastPoint is the predicted spend for one future day.
type ForecastPoint struct {
	Date            time.Time
	PredictedAmount float64
}

// Forecast is the outcome of a spending forecast. Points is empty when Trend
// is TrendInsufficientData or TrendError.
type Forecast struct {
	Points []ForecastPoint
	Trend  Trend
	Slope  float64
}

// ForecastSpending runs ForecastSpending with DefaultPolicy.
func ForecastSpending(expenses []models.Expense, horizonDays int, now time.Time) Forecast {
	return DefaultPolicy().ForecastSpending(expenses, horizonDays, now)
}

// ForecastSpending fits a least-squares line through daily totals of the last
// ForecastLookbackDays and projects it horizonDays forward.
//
// The x axis is the zero-based index of the days that have spending, so gaps
// between those days are ignored. The n observed days sit at 0..n-1 and the
// horizon is predicted at n, n+1, ... Points are dated today, today+1, ...
// rather than from the last observed day. Predictions are clamped at zero.
func (p Policy) ForecastSpending(expenses []models.Expense, horizonDays int, now time.Time) (out Forecast) {
	defer recoverAdvisory("forecast", func() { out = emptyForecast(TrendError) })

	f, err := p.forecast(expenses, horizonDays, now)
	if err != nil {
		logAdvisory(err)
		return emptyForecast(TrendError)
	}
	return f
}

func (p Policy) forecast(expenses []models.Expense, horizonDays int, now time.Time) (Forecast, error) {
	if horizonDays < 0 {
		return Forecast{}, advisoryf("forecast", "horizon %d must not be negative", horizonDays)
	}

	today := models.Day(now)
	cutoff := WindowStart(now, p.ForecastLookbackDays)

	daily := make(map[time.Time]float64)
	for _, e := range expenses {
		if err := checkExpense("forecast", e); err != nil {
			return Forecast{}, err
		}
		day := models.Day(e.Date)
		if day.Before(cutoff) {
			continue
		}
		daily[day] += e.Amount
	}

	if len(daily) < p.MinForecastDays {
		return emptyForecast(TrendInsufficientData), nil
	}

	days := make([]time.Time, 0, len(daily))
	for d := range daily {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	xs := make([]float64, len(days))
	ys := make([]float64, len(days))
	for i, d := range days {
		xs[i] = float64(i)
		ys[i] = daily[d]
	}

	slope, intercept, err := fitLine(xs, ys)
	if err != nil {
		return Forecast{}, err
	}

	points := make([]ForecastPoint, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		predicted := intercept + slope*float64(len(days)+i)
		points = append(points, ForecastPoint{
			Date:            today.AddDate(0, 0, i),
			PredictedAmount: math.Max(0, predicted),
		})
	}

	return Forecast{
		Points: points,
		Trend:  p.classify(slope),
		Slope:  slope,
	}, nil
}

func (p Policy) classify(slope float64) Trend {
	switch {
	case slope > p.TrendSlopeThreshold:
		return TrendIncreasing
	case slope < -p.TrendSlopeThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func emptyForecast(trend Trend) Forecast {
	return Forecast{Points: []ForecastPoint{}, Trend: trend}
}

// fitLine computes the ordinary least-squares slope and intercept of ys over xs.
func fitLine(xs, ys []float64) (slope, intercept float64, err error) {
	n := float64(len(xs))
	if n < 2 {
		return 0, 0, advisoryf("forecast", "need at least two points, got %d", len(xs))
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, 0, advisoryf("forecast", "all points share one x value")
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, nil
}
