// Package chirouter reads route parameters resolved by github.com/go-chi/chi.
//
// Pass Params to handler.WithParams so handlers see chi's URL parameters
// through ctx.Req.Param:
//
//	import (
//		"github.com/go-chi/chi/v5"
//		"github.com/dmitrymomot/fluent/core/handler"
//		"github.com/dmitrymomot/fluent/integration/router/chirouter"
//	)
//
//	r := chi.NewRouter()
//	r.Method(http.MethodGet, "/users/{id}", handler.Adapt(func(ctx *handler.Context) error {
//		_, err := ctx.Res.SendString("user " + ctx.Req.Param("id"))
//		return err
//	}, handler.WithParams(chirouter.Params)))
//
// Mount builds the same adapter for a chi router in one call:
//
//	chirouter.Mount(r, http.MethodGet, "/users/{id}", show, handler.WithMiddleware(mw...))
package chirouter
