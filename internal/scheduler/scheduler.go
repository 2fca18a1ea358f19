// Package scheduler runs periodic background jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// BudgetRegenerator rebuilds the AI-recommended budgets.
type BudgetRegenerator interface {
	RegenerateBudgets(ctx context.Context) ([]models.Budget, error)
}

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

// New returns a stopped scheduler. Each job run is bounded by timeout.
func New(timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{}))),
		timeout: timeout,
	}
}

// ScheduleBudgets registers budget regeneration on spec, a standard cron
// expression or descriptor such as "@daily".
func (s *Scheduler) ScheduleBudgets(spec string, r BudgetRegenerator) error {
	_, err := s.cron.AddFunc(spec, func() { s.runBudgets(r) })
	if err != nil {
		return fmt.Errorf("invalid budget schedule %q: %w", spec, err)
	}
	slog.Info("Budget regeneration scheduled", "schedule", spec)
	return nil
}

func (s *Scheduler) runBudgets(r BudgetRegenerator) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	budgets, err := r.RegenerateBudgets(ctx)
	if err != nil {
		slog.Error("Scheduled budget regeneration failed", "error", err)
		return
	}
	slog.Info("Scheduled budget regeneration finished",
		"count", len(budgets),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	slog.Info("Scheduler stopped")
	return nil
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
