package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/marilyndevx/FinFusion-V1/internal/analytics"
	"github.com/marilyndevx/FinFusion-V1/internal/ledger"
	"github.com/marilyndevx/FinFusion-V1/internal/models"
	"github.com/marilyndevx/FinFusion-V1/internal/storage"
	"github.com/marilyndevx/FinFusion-V1/pkg/api"
)

// InsightsConfig tunes the analytics the InsightsService serves.
type InsightsConfig struct {
	// WindowDays is the lookback for spending analytics and budget generation.
	WindowDays int

	// HorizonDays is how many days GetForecast projects.
	HorizonDays int

	Policy analytics.Policy

	// Now defaults to time.Now.
	Now func() time.Time
}

// DefaultInsightsConfig returns the production settings.
func DefaultInsightsConfig() InsightsConfig {
	return InsightsConfig{
		WindowDays:  analytics.DefaultWindowDays,
		HorizonDays: analytics.DefaultForecastHorizonDays,
		Policy:      analytics.DefaultPolicy(),
		Now:         time.Now,
	}
}

// InsightsService implements suggestions, budgets, analytics and forecasting.
type InsightsService struct {
	store storage.Store
	cfg   InsightsConfig
}

var _ api.InsightsServiceHandler = (*InsightsService)(nil)

// NewInsightsService creates an InsightsService.
func NewInsightsService(store storage.Store, cfg InsightsConfig) *InsightsService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &InsightsService{store: store, cfg: cfg}
}

// GetSuggestions returns up to four tips derived from the newest expenses.
func (s *InsightsService) GetSuggestions(ctx context.Context, req *connect.Request[api.GetSuggestionsRequest]) (*connect.Response[api.GetSuggestionsResponse], error) {
	slog.Info("GetSuggestions request received")

	expenses, err := s.store.ListExpenses(ctx, storage.ExpenseQuery{Limit: s.cfg.Policy.SuggestionSampleSize})
	if err != nil {
		slog.Error("GetSuggestions failed", "error", err)
		return nil, toConnectError(err)
	}

	tips := s.cfg.Policy.Suggestions(expenses)

	slog.Info("GetSuggestions successful", "sample", len(expenses), "count", len(tips))

	return connect.NewResponse(&api.GetSuggestionsResponse{Suggestions: tips}), nil
}

// GenerateBudgets replaces the AI-recommended budgets with fresh ones.
func (s *InsightsService) GenerateBudgets(ctx context.Context, req *connect.Request[api.GenerateBudgetsRequest]) (*connect.Response[api.GenerateBudgetsResponse], error) {
	slog.Info("GenerateBudgets request received")

	budgets, err := s.RegenerateBudgets(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]api.Budget, len(budgets))
	for i := range budgets {
		out[i] = toAPIBudget(&budgets[i])
	}

	return connect.NewResponse(&api.GenerateBudgetsResponse{Budgets: out}), nil
}

// RegenerateBudgets recomputes recommendations from the spending window and,
// when there are any, swaps them in for the existing AI-recommended budgets.
// With no recent spending the stored budgets are left alone.
func (s *InsightsService) RegenerateBudgets(ctx context.Context) ([]models.Budget, error) {
	now := s.cfg.Now()
	expenses, err := s.store.ListExpenses(ctx, storage.ExpenseQuery{
		Since: analytics.WindowStart(now, s.cfg.WindowDays),
	})
	if err != nil {
		slog.Error("RegenerateBudgets failed - could not list expenses", "error", err)
		return nil, err
	}

	drafts := s.cfg.Policy.GenerateBudgets(analytics.CategorySpending(expenses, s.cfg.WindowDays, now))
	if len(drafts) == 0 {
		slog.Info("RegenerateBudgets skipped - no recent spending")
		return drafts, nil
	}

	ptrs := make([]*models.Budget, len(drafts))
	for i := range drafts {
		ptrs[i] = &drafts[i]
	}
	if err := s.store.ReplaceAIRecommendedBudgets(ctx, ptrs); err != nil {
		slog.Error("RegenerateBudgets failed - could not store budgets", "error", err)
		return nil, err
	}

	slog.Info("Budgets regenerated", "count", len(drafts))
	return drafts, nil
}

// ListBudgets returns every budget, AI-recommended and user-entered.
func (s *InsightsService) ListBudgets(ctx context.Context, req *connect.Request[api.ListBudgetsRequest]) (*connect.Response[api.ListBudgetsResponse], error) {
	slog.Info("ListBudgets request received")

	budgets, err := s.store.ListBudgets(ctx)
	if err != nil {
		slog.Error("ListBudgets failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.Budget, len(budgets))
	for i := range budgets {
		out[i] = toAPIBudget(&budgets[i])
	}

	slog.Info("ListBudgets successful", "count", len(out))

	return connect.NewResponse(&api.ListBudgetsResponse{Budgets: out}), nil
}

// CreateBudget stores a user-entered budget.
func (s *InsightsService) CreateBudget(ctx context.Context, req *connect.Request[api.CreateBudgetRequest]) (*connect.Response[api.CreateBudgetResponse], error) {
	slog.Info("CreateBudget request received",
		"category", req.Msg.Category,
		"limit", req.Msg.Limit,
	)

	budget, err := ledger.NewBudget(req.Msg.Category, req.Msg.Limit, req.Msg.Period)
	if err != nil {
		slog.Warn("CreateBudget rejected", "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateBudget(ctx, budget); err != nil {
		slog.Error("CreateBudget failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Budget created", "budget_id", budget.ID, "category", budget.Category)

	return connect.NewResponse(&api.CreateBudgetResponse{Budget: toAPIBudget(budget)}), nil
}

// GetSpendingAnalytics summarizes spending per category over the window.
func (s *InsightsService) GetSpendingAnalytics(ctx context.Context, req *connect.Request[api.GetSpendingAnalyticsRequest]) (*connect.Response[api.GetSpendingAnalyticsResponse], error) {
	slog.Info("GetSpendingAnalytics request received")

	now := s.cfg.Now()
	expenses, err := s.store.ListExpenses(ctx, storage.ExpenseQuery{
		Since: analytics.WindowStart(now, s.cfg.WindowDays),
	})
	if err != nil {
		slog.Error("GetSpendingAnalytics failed", "error", err)
		return nil, toConnectError(err)
	}

	summary := analytics.CategorySpending(expenses, s.cfg.WindowDays, now)
	rows := summary.Sorted()
	byCategory := make([]api.CategorySpending, len(rows))
	for i, row := range rows {
		byCategory[i] = api.CategorySpending{Category: row.Category, Amount: row.Amount}
	}
	total := decimal.NewFromFloat(summary.Total()).Round(2).InexactFloat64()

	slog.Info("GetSpendingAnalytics successful", "categories", len(rows), "total", total)

	return connect.NewResponse(&api.GetSpendingAnalyticsResponse{
		TotalMonthly: total,
		ByCategory:   byCategory,
	}), nil
}

// GetForecast projects daily spending forward from the lookback window.
func (s *InsightsService) GetForecast(ctx context.Context, req *connect.Request[api.GetForecastRequest]) (*connect.Response[api.GetForecastResponse], error) {
	slog.Info("GetForecast request received")

	now := s.cfg.Now()
	expenses, err := s.store.ListExpenses(ctx, storage.ExpenseQuery{
		Since: analytics.WindowStart(now, s.cfg.Policy.ForecastLookbackDays),
	})
	if err != nil {
		slog.Error("GetForecast failed", "error", err)
		return nil, toConnectError(err)
	}

	f := s.cfg.Policy.ForecastSpending(expenses, s.cfg.HorizonDays, now)
	points := make([]api.ForecastPoint, len(f.Points))
	for i, p := range f.Points {
		points[i] = api.ForecastPoint{
			Date:            models.FormatDate(p.Date),
			PredictedAmount: p.PredictedAmount,
		}
	}

	slog.Info("GetForecast successful", "trend", f.Trend, "points", len(points))

	return connect.NewResponse(&api.GetForecastResponse{
		Forecast: points,
		Trend:    string(f.Trend),
		Slope:    f.Slope,
	}), nil
}
