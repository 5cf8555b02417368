// Package muxrouter reads route variables resolved by github.com/gorilla/mux.
//
//	r := mux.NewRouter()
//	r.Handle("/users/{id:[0-9]+}", handler.Adapt(show,
//		handler.WithParams(muxrouter.Params),
//	)).Methods(http.MethodGet)
//
// Handle does the same in one call and returns the *mux.Route for further
// matchers.
package muxrouter
