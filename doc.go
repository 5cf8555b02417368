// Package fluent provides an Express-style request and response model for
// net/http: a parsed request view, a chainable response builder that seals
// into an immutable response, and an adapter that runs handlers and
// middleware behind any router.
//
// # Package Organization
//
//   - Core: the request/response model, handler plumbing and ambient services
//   - Middleware: handler.Middleware for cross-cutting concerns
//   - Integrations: route parameter sources for external routers
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/fluent/core/response
//	go doc -all github.com/dmitrymomot/fluent/middleware
//
// # Core Packages
//
// github.com/dmitrymomot/fluent/core/request
//
// Read-only view of an incoming request: method, path, hostname, protocol,
// original URL, route parameters, case-insensitive headers and a parsed query.
// Body and RawBody are filled in by body-parsing middleware.
//
// github.com/dmitrymomot/fluent/core/response
//
// Builder accumulates status and headers through chained setters. Send,
// SendString, JSON, Stream, Redirect and Finalize seal it into a Response;
// any later mutation fails with ErrFinalized. Response.Render writes it to an
// http.ResponseWriter.
//
// github.com/dmitrymomot/fluent/core/handler
//
// Context pairs a Request with a Builder. HandlerFunc, Middleware and Chain
// compose request processing; Adapt exposes it as an http.Handler with error
// and panic handling.
//
// github.com/dmitrymomot/fluent/core/logger
//
// slog construction (json, text, pretty) and nil-safe attribute helpers.
//
// github.com/dmitrymomot/fluent/core/config
//
// Generic environment loading with .env support and per-type caching.
//
// github.com/dmitrymomot/fluent/core/server
//
// HTTP server with graceful shutdown, usable as an errgroup function.
//
// # Middleware
//
// github.com/dmitrymomot/fluent/middleware
//
// RequestID, Logging, Recover, BodyParser, SecurityHeaders and Metrics
// (Prometheus).
//
// # Integrations
//
// github.com/dmitrymomot/fluent/integration/router/chirouter
//
// Route parameters from go-chi/chi.
//
// github.com/dmitrymomot/fluent/integration/router/muxrouter
//
// Route variables from gorilla/mux.
//
// # Quick Start
//
//	r := chi.NewRouter()
//	chirouter.Mount(r, http.MethodGet, "/hello/{name}", func(ctx *handler.Context) error {
//		_, err := ctx.Res.Status(http.StatusOK).
//			Set("Cache-Control", "no-store").
//			JSON(map[string]string{"hello": ctx.Req.Param("name")})
//		return err
//	}, handler.WithMiddleware(middleware.RequestID(), middleware.Logging()))
//
//	srv := server.New(":8080")
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, r))
//	_ = g.Wait()
package fluent
