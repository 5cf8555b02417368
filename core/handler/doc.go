// Package handler ties request parsing and response building together. It
// defines the per-request Context, the HandlerFunc and Middleware types, and
// Adapt, which turns a HandlerFunc into a standard http.Handler.
//
// # Context
//
// Every request gets a Context holding the parsed request (Req) and a fresh
// response builder (Res). Context also implements context.Context, delegating
// to the request's context, with a small value overlay for middleware:
//
//	func show(ctx *handler.Context) error {
//		user, err := repo.Find(ctx, ctx.Req.Param("id"))
//		if err != nil {
//			return handler.ErrNotFound.WithMessage("user not found")
//		}
//		_, err = ctx.Res.JSON(user)
//		return err
//	}
//
// # Middleware
//
// Middleware wraps a HandlerFunc. Chain composes them so the first middleware
// in the slice runs first:
//
//	timing := func(next handler.HandlerFunc) handler.HandlerFunc {
//		return func(ctx *handler.Context) error {
//			start := time.Now()
//			err := next(ctx)
//			log.Info("done", "elapsed", time.Since(start))
//			return err
//		}
//	}
//
// # Adapting to net/http
//
// Adapt works with any router. Route parameters come from a ParamsFunc:
//
//	r := chi.NewRouter()
//	r.Method(http.MethodGet, "/users/{id}", handler.Adapt(show,
//		handler.WithParams(chirouter.Params),
//		handler.WithMiddleware(middleware.RequestID()),
//	))
//
// A builder the chain leaves writable is finalized with its current status and
// headers. Returned errors and recovered panics go to the ErrorHandler;
// DefaultErrorHandler renders Error values as JSON and everything else as 500.
package handler
