package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/fluent/core/handler"
	"github.com/dmitrymomot/fluent/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for successful requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// LogRequest logs a record when the request starts (default: false)
	LogRequest bool

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string
}

// Logging logs each completed request at info level.
func Logging() handler.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger logs each completed request with log.
func LoggingWithLogger(log *slog.Logger) handler.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig logs request completion with the status of the produced
// response. A returned error is first passed to ctx.HandleError, so the
// logged status is the one the configured error handler renders.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx *handler.Context) error {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Req
			requestID, _ := GetRequestID(ctx)

			if cfg.LogRequest {
				cfg.Logger.LogAttrs(ctx, cfg.LogLevel, "HTTP request started",
					logger.Component(cfg.Component),
					logger.Event("request"),
					logger.Method(req.Method()),
					logger.Path(req.Path()),
					logger.Query(req.Raw().URL.RawQuery),
					logger.RemoteAddr(req.Raw().RemoteAddr),
					logger.UserAgent(req.Get("User-Agent")),
					logger.RequestID(requestID),
				)
			}

			err := next(ctx)
			duration := time.Since(start)

			status := statusOf(ctx, err)
			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Event("response"),
				logger.Method(req.Method()),
				logger.Path(req.Path()),
				logger.StatusCode(status),
				logger.Duration(duration),
				logger.RequestID(requestID),
			}

			level := cfg.LogLevel
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
				attrs = append(attrs, logger.Error(err))
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
				attrs = append(attrs, logger.Error(err))
			case duration > cfg.SlowRequestThreshold:
				level = slog.LevelWarn
				attrs = append(attrs, slog.Bool("slow_request", true))
			}

			cfg.Logger.LogAttrs(ctx, level, "HTTP request completed", attrs...)
			return err
		}
	}
}
