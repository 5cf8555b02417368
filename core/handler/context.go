package handler

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/fluent/core/request"
	"github.com/dmitrymomot/fluent/core/response"
)

// Context pairs the request view and the response builder of one inbound
// request. It also satisfies context.Context by delegating to the raw
// request's context.
//
// A Context belongs to a single request and is used sequentially by its
// middleware chain; it has no internal locking.
type Context struct {
	Req *request.Request
	Res *response.Builder

	values       map[any]any
	errorHandler ErrorHandler
	errorHandled bool
}

// New creates a Context for raw with the given route parameters.
// The only failures are those of request.New.
func New(raw *http.Request, params map[string]string) (*Context, error) {
	req, err := request.New(raw, params)
	if err != nil {
		return nil, err
	}
	return &Context{
		Req:          req,
		Res:          response.New(),
		errorHandler: DefaultErrorHandler,
	}, nil
}

// HandleError passes err to the request's error handler so that Res reflects
// it before the chain unwinds. Only the first call per request has an effect;
// it reports whether this call handled err. Adapt calls it for the error the
// chain returns, so middleware that need the final status (logging, metrics)
// may call it earlier without the error being rendered twice.
func (c *Context) HandleError(err error) bool {
	if err == nil || c.errorHandled {
		return false
	}
	c.errorHandled = true
	c.errorHandler(c, err)
	return true
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.Req.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.Req.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.Req.Context().Err()
}

// Value returns a value stored with SetValue, falling back to the request's context.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.Req.Context().Value(key)
}

// SetValue stores a request-scoped value. The raw request is left untouched.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}
