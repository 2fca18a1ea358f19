package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the RPC collectors registered by NewMetrics.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the RPC collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finfusion",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "RPC calls by procedure and Connect status code.",
		}, []string{"procedure", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "finfusion",
			Subsystem: "rpc",
			Name:      "duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}
}

// Interceptor counts every call and observes its latency.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.requests.WithLabelValues(procedure, code).Inc()
			m.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

			return resp, err
		}
	}
}
