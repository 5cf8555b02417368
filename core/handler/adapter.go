package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/fluent/core/logger"
	"github.com/dmitrymomot/fluent/core/response"
)

// ParamsFunc extracts route parameters resolved by an external router.
type ParamsFunc func(r *http.Request) map[string]string

// Option configures the http.Handler returned by Adapt.
type Option func(*adapter)

// WithParams sets the route parameter source. Without it every request gets
// an empty parameter map.
func WithParams(fn ParamsFunc) Option {
	return func(a *adapter) {
		if fn != nil {
			a.params = fn
		}
	}
}

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *adapter) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithMiddleware appends middleware around the endpoint.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(a *adapter) {
		a.middlewares = append(a.middlewares, middlewares...)
	}
}

// WithLogger sets the logger used for context and render failures.
func WithLogger(l *slog.Logger) Option {
	return func(a *adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

type adapter struct {
	endpoint     HandlerFunc
	middlewares  []Middleware
	params       ParamsFunc
	errorHandler ErrorHandler
	logger       *slog.Logger
	handler      HandlerFunc
}

// Adapt turns h into an http.Handler. For every request it builds a Context,
// runs the middleware chain and h, hands returned errors and panics to the
// error handler, and renders the finalized response. A builder the chain left
// writable is finalized as-is.
func Adapt(h HandlerFunc, opts ...Option) http.Handler {
	a := &adapter{
		endpoint:     h,
		params:       func(*http.Request) map[string]string { return nil },
		errorHandler: DefaultErrorHandler,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.handler = Chain(a.middlewares, a.endpoint)
	return a
}

// ServeHTTP implements http.Handler.
func (a *adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, err := New(r, a.params(r))
	if err != nil {
		a.logger.WarnContext(r.Context(), "failed to create request context",
			logger.Component("handler"),
			logger.Path(r.RequestURI),
			logger.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	ctx.errorHandler = a.errorHandler

	if err := a.run(ctx); err != nil {
		ctx.HandleError(err)
	}
	if err := ctx.Res.Err(); err != nil {
		a.logger.WarnContext(r.Context(), "response builder rejected a call",
			logger.Component("handler"),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
	}

	resp, ok := ctx.Res.Response()
	if !ok {
		if resp, err = ctx.Res.Finalize(); err != nil {
			// Unreachable: Response reported the builder as writable.
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if err := resp.Render(w); err != nil {
		a.logger.ErrorContext(r.Context(), "failed to render response",
			logger.Component("handler"),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.StatusCode(resp.StatusCode()),
			logger.Error(err),
		)
	}
}

func (a *adapter) run(ctx *Context) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = PanicError(v)
		}
	}()
	return a.handler(ctx)
}

// DefaultErrorHandler renders err as a JSON Error. Errors that are not an
// Error become ErrInternalServerError. If the chain already finalized the
// response, it is replaced; headers set so far are carried over except those
// describing the discarded body.
func DefaultErrorHandler(ctx *Context, err error) {
	httpErr := AsError(err)
	if ctx.Res.Finalized() {
		ctx.Res = rebuild(ctx.Res)
	}
	if _, jsonErr := ctx.Res.Status(httpErr.Status).JSON(httpErr); jsonErr != nil {
		_, _ = ctx.Res.Type("text/plain; charset=utf-8").SendString(httpErr.Message)
	}
}

// bodyHeaders describe a specific body and do not survive rebuild.
var bodyHeaders = []string{
	"Content-Type",
	"Content-Length",
	"Content-Encoding",
	"Content-Disposition",
	"Location",
}

// rebuild returns a writable builder holding prev's headers minus bodyHeaders.
func rebuild(prev *response.Builder) *response.Builder {
	h := prev.HeaderMap()
	for _, name := range bodyHeaders {
		h.Del(name)
	}
	b := response.New()
	for name, values := range h {
		if len(values) > 0 {
			b.Set(name, values[0])
		}
	}
	return b
}
