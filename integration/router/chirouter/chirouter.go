package chirouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fluent/core/handler"
)

// Params returns the URL parameters chi matched for r. Wildcard captures are
// keyed "*". Requests that did not pass through a chi router yield nil.
func Params(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || len(rctx.URLParams.Keys) == 0 {
		return nil
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			params[key] = rctx.URLParams.Values[i]
		}
	}
	return params
}

// Mount registers h on r for the given method and pattern, with chi's URL
// parameters wired in. Extra options are applied after WithParams.
func Mount(r chi.Router, method, pattern string, h handler.HandlerFunc, opts ...handler.Option) {
	opts = append([]handler.Option{handler.WithParams(Params)}, opts...)
	r.Method(method, pattern, handler.Adapt(h, opts...))
}
