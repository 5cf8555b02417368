package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/fluent/core/handler"
)

// Common size constants for convenience.
const (
	KB int64 = 1024
	MB       = 1024 * KB
)

// BodyParserConfig configures the body parsing middleware.
type BodyParserConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *handler.Context) bool

	// MaxSize is the maximum accepted body size in bytes (default: 1MB)
	MaxSize int64 `env:"BODY_LIMIT" envDefault:"1048576"`

	// ContentTypeLimit overrides MaxSize per media type,
	// e.g. {"application/json": 64 * KB}
	ContentTypeLimit map[string]int64 `env:"-"`
}

// BodyParser reads request bodies up to 1MB.
func BodyParser() handler.Middleware {
	return BodyParserWithConfig(BodyParserConfig{})
}

// BodyParserWithSize reads request bodies up to maxSize bytes.
func BodyParserWithSize(maxSize int64) handler.Middleware {
	return BodyParserWithConfig(BodyParserConfig{MaxSize: maxSize})
}

// BodyParserWithConfig reads the request body into ctx.Req.RawBody and, for
// JSON and URL-encoded forms, decodes it into ctx.Req.Body (any and
// url.Values respectively). Other media types only get RawBody.
//
// Bodies over the limit fail with handler.ErrRequestEntityTooLarge and
// undecodable ones with handler.ErrBadRequest; next is not called.
func BodyParserWithConfig(cfg BodyParserConfig) handler.Middleware {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = MB
	}

	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx *handler.Context) error {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			raw := ctx.Req.Raw()
			if raw.Body == nil || raw.Body == http.NoBody {
				return next(ctx)
			}

			mediaType, _, _ := mime.ParseMediaType(ctx.Req.Get("Content-Type"))

			maxSize := cfg.MaxSize
			if limit, ok := cfg.ContentTypeLimit[mediaType]; ok {
				maxSize = limit
			}

			if raw.ContentLength > maxSize {
				return tooLarge(raw.ContentLength, maxSize)
			}

			data, err := io.ReadAll(io.LimitReader(raw.Body, maxSize+1))
			if err != nil {
				return handler.ErrBadRequest.WithMessage("failed to read request body")
			}
			if int64(len(data)) > maxSize {
				return tooLarge(0, maxSize)
			}
			ctx.Req.RawBody = data

			if len(data) == 0 {
				return next(ctx)
			}

			switch mediaType {
			case "application/json":
				var v any
				if err := json.Unmarshal(data, &v); err != nil {
					return handler.ErrBadRequest.
						WithMessage("invalid JSON body").
						WithDetails(map[string]any{"error": err.Error()})
				}
				ctx.Req.Body = v
			case "application/x-www-form-urlencoded":
				v, err := url.ParseQuery(string(data))
				if err != nil {
					return handler.ErrBadRequest.WithMessage("invalid form body")
				}
				ctx.Req.Body = v
			}

			return next(ctx)
		}
	}
}

func tooLarge(size, limit int64) error {
	details := map[string]any{"limit": limit}
	message := fmt.Sprintf("Request body too large. Maximum allowed: %s", formatBytes(limit))
	if size > 0 {
		details["size"] = size
		message = fmt.Sprintf("Request body too large. Size: %s, Maximum allowed: %s",
			formatBytes(size), formatBytes(limit))
	}
	return handler.ErrRequestEntityTooLarge.WithMessage(message).WithDetails(details)
}

func formatBytes(n int64) string {
	switch {
	case n >= MB:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
