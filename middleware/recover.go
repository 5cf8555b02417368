package middleware

import (
	"log/slog"
	"runtime"

	"github.com/dmitrymomot/fluent/core/handler"
	"github.com/dmitrymomot/fluent/core/logger"
)

// RecoverConfig configures the panic recovery middleware.
type RecoverConfig struct {
	// Logger receives the panic record (default: slog.Default())
	Logger *slog.Logger
	// StackSize limits the captured stack in bytes (default: 4KB, negative disables)
	StackSize int
}

// Recover converts panics into errors wrapping handler.ErrPanic.
func Recover() handler.Middleware {
	return RecoverWithConfig(RecoverConfig{})
}

// RecoverWithConfig converts panics into errors and logs them with a stack trace.
func RecoverWithConfig(cfg RecoverConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.StackSize == 0 {
		cfg.StackSize = 4 << 10
	}

	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx *handler.Context) (err error) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				err = handler.PanicError(v)

				attrs := []slog.Attr{
					logger.Component("recover"),
					logger.Method(ctx.Req.Method()),
					logger.Path(ctx.Req.Path()),
					logger.Error(err),
				}
				if cfg.StackSize > 0 {
					buf := make([]byte, cfg.StackSize)
					buf = buf[:runtime.Stack(buf, false)]
					attrs = append(attrs, slog.String("stack", string(buf)))
				}
				cfg.Logger.LogAttrs(ctx, slog.LevelError, "recovered from panic", attrs...)
			}()
			return next(ctx)
		}
	}
}
