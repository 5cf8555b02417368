// Package logger provides log/slog attribute helpers and root logger
// construction.
//
// Attribute helpers return an empty slog.Attr for nil errors and empty
// strings, which slog handlers drop:
//
//	log.ErrorContext(ctx, "render failed",
//		logger.Component("handler"),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(500),
//		logger.Error(err), // safe with nil
//	)
//
// # Root Logger
//
// New builds a logger from Config, which is loadable from the environment:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log, err := logger.New(cfg)
//
// LOG_FORMAT selects "json" (default), "text", or "pretty". The pretty format
// uses github.com/lmittmann/tint for colored development output.
// LOG_LEVEL accepts slog level names such as "debug" or "warn+2".
package logger
