package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/marilyndevx/FinFusion-V1/internal/config"
	"github.com/marilyndevx/FinFusion-V1/internal/receipt"
	"github.com/marilyndevx/FinFusion-V1/internal/scheduler"
	"github.com/marilyndevx/FinFusion-V1/internal/service"
	"github.com/marilyndevx/FinFusion-V1/internal/storage/sqlite"
	"github.com/marilyndevx/FinFusion-V1/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	insightsCfg := service.DefaultInsightsConfig()
	insightsCfg.WindowDays = cfg.AnalyticsWindowDays
	insightsCfg.HorizonDays = cfg.ForecastHorizonDays
	insightsCfg.Policy = cfg.Policy()

	svcs := services{
		expenses: service.NewExpenseService(store, receipt.NewPlaceholderExtractor()),
		groups:   service.NewGroupService(store),
		insights: service.NewInsightsService(store, insightsCfg),
	}

	sched, err := newScheduler(cfg.BudgetSchedule, svcs.insights)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newHandler(cfg, svcs, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if sched != nil {
		g.Go(func() error { return sched.Run(ctx) })
	}

	return g.Wait()
}

// newScheduler registers the budget job before anything is started, so a bad
// cron spec fails run before the listener binds. It returns nil when no
// schedule is configured.
func newScheduler(spec string, r scheduler.BudgetRegenerator) (*scheduler.Scheduler, error) {
	if spec == "" {
		return nil, nil
	}
	sched := scheduler.New(time.Minute)
	if err := sched.ScheduleBudgets(spec, r); err != nil {
		return nil, err
	}
	return sched, nil
}
