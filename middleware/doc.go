// Package middleware provides handler.Middleware for common cross-cutting
// concerns: request IDs, request logging, panic recovery, body parsing,
// security headers and Prometheus metrics.
//
// All middleware follow one pattern: a default constructor, a WithConfig
// constructor taking a config struct with an optional Skip function, and
// helpers for reading stored values back.
//
//	h := handler.Adapt(endpoint, handler.WithMiddleware(
//		middleware.Recover(),
//		middleware.RequestID(),
//		middleware.LoggingWithLogger(log),
//		middleware.SecurityHeaders(),
//		middleware.BodyParserWithSize(64*middleware.KB),
//	))
//
// # Response Headers
//
// A response cannot change once it is finalized, so middleware that add
// headers (RequestID, SecurityHeaders) set them on ctx.Res before calling
// next. Handlers may still override them.
//
// # Body Parsing
//
// BodyParser fills ctx.Req.RawBody with the request bytes and ctx.Req.Body
// with the decoded value for JSON (any) and URL-encoded forms (url.Values):
//
//	func create(ctx *handler.Context) error {
//		data, ok := ctx.Req.Body.(map[string]any)
//		if !ok {
//			return handler.ErrBadRequest
//		}
//		_, err := ctx.Res.Status(http.StatusCreated).JSON(data)
//		return err
//	}
//
// # Observability
//
// Logging and Metrics read the status of the produced response. When the chain
// returns an error they call ctx.HandleError first, so the status is the one
// rendered by the configured error handler, default or custom. Logging picks
// the level from it: error for 5xx, warn for 4xx and slow requests.
package middleware
