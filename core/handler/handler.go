package handler

// HandlerFunc processes a request. It is expected to finalize ctx.Res or
// return an error.
type HandlerFunc func(ctx *Context) error

// ErrorHandler turns an error returned by the chain into a response.
type ErrorHandler func(ctx *Context, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain builds a single handler from a middleware stack and an endpoint.
// The first middleware runs first.
func Chain(middlewares []Middleware, endpoint HandlerFunc) HandlerFunc {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
