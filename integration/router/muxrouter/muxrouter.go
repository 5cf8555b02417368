package muxrouter

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrymomot/fluent/core/handler"
)

// Params returns the route variables mux matched for r.
func Params(r *http.Request) map[string]string {
	return mux.Vars(r)
}

// Handle registers h on r for path with route variables wired in. Extra
// options are applied after WithParams.
func Handle(r *mux.Router, path string, h handler.HandlerFunc, opts ...handler.Option) *mux.Route {
	opts = append([]handler.Option{handler.WithParams(Params)}, opts...)
	return r.Handle(path, handler.Adapt(h, opts...))
}
