package middleware

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/fluent/core/handler"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *handler.Context) bool

	// Registerer receives the collectors (default: prometheus.DefaultRegisterer)
	Registerer prometheus.Registerer

	// Namespace prefixes metric names (default: "http")
	Namespace string

	// Buckets for the duration histogram (default: prometheus.DefBuckets)
	Buckets []float64
}

// Metrics records request counts and durations in the default registry.
func Metrics() handler.Middleware {
	return MetricsWithConfig(MetricsConfig{})
}

// MetricsWithConfig records <namespace>_requests_total and
// <namespace>_request_duration_seconds, labeled by method and status code.
// Errors are passed to ctx.HandleError so the code label is the rendered status.
// It panics if the collectors are already registered with cfg.Registerer.
func MetricsWithConfig(cfg MetricsConfig) handler.Middleware {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "http"
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = prometheus.DefBuckets
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "requests_total",
		Help:      "Number of finalized HTTP responses.",
	}, []string{"method", "code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "request_duration_seconds",
		Help:      "Time spent in the handler chain.",
		Buckets:   cfg.Buckets,
	}, []string{"method", "code"})

	cfg.Registerer.MustRegister(requests, duration)

	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx *handler.Context) error {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			err := next(ctx)

			code := strconv.Itoa(statusOf(ctx, err))
			method := ctx.Req.Method()
			requests.WithLabelValues(method, code).Inc()
			duration.WithLabelValues(method, code).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
