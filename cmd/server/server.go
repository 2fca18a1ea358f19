package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/marilyndevx/FinFusion-V1/internal/auth"
	"github.com/marilyndevx/FinFusion-V1/internal/config"
	"github.com/marilyndevx/FinFusion-V1/internal/middleware"
	"github.com/marilyndevx/FinFusion-V1/internal/service"
	"github.com/marilyndevx/FinFusion-V1/pkg/api"
)

const banner = "FinFusion ledger & settlement API"

// services bundles the RPC implementations the server exposes.
type services struct {
	expenses *service.ExpenseService
	groups   *service.GroupService
	insights *service.InsightsService
}

// newHandler assembles the full HTTP surface: the three Connect services,
// health, metrics and the banner, wrapped in request logging, CORS and h2c.
func newHandler(cfg *config.Config, svcs services, reg *prometheus.Registry) http.Handler {
	metrics := middleware.NewMetrics(reg)

	interceptors := []connect.Interceptor{metrics.Interceptor()}
	if cfg.AuthEnabled() {
		interceptors = append(interceptors, middleware.RequireAuth(auth.NewTokenManager(cfg.AuthSecret, cfg.AuthTokenTTL)))
	} else {
		slog.Warn("AUTH_SECRET not set, RPCs are unauthenticated")
	}
	interceptors = append(interceptors, middleware.LoggingInterceptor())
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()
	mux.Handle(api.NewExpenseServiceHandler(svcs.expenses, opts))
	mux.Handle(api.NewGroupServiceHandler(svcs.groups, opts))
	mux.Handle(api.NewInsightsServiceHandler(svcs.insights, opts))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": banner})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
		},
		MaxAge: 7200,
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	return h2c.NewHandler(loggingMiddleware(c.Handler(mux)), &http2.Server{})
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
