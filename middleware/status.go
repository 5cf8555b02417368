package middleware

import (
	"github.com/dmitrymomot/fluent/core/handler"
)

// statusOf reports the status the client will receive for a chain that
// returned err. A non-nil err is handed to the request's error handler first,
// so custom handlers installed with handler.WithErrorHandler are honored.
func statusOf(ctx *handler.Context, err error) int {
	ctx.HandleError(err)
	if resp, ok := ctx.Res.Response(); ok {
		return resp.StatusCode()
	}
	return ctx.Res.StatusCode()
}
