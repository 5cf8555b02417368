// Package response provides a chainable response builder that accumulates
// status, headers and body and then freezes them into an immutable Response.
//
// # Lifecycle
//
// A Builder starts writable with status 200 and no headers. Mutators (Status,
// Set, Headers, Type) return the builder for chaining. Finalizers (Send,
// SendString, JSON, Stream, Redirect, RedirectWithStatus, Finalize) move it to
// the finalized state and return the produced *Response. The transition is
// one-way.
//
// After finalization every mutator is a no-op that records ErrFinalized
// (see Builder.Err) and every finalizer returns ErrFinalized. A rejected call
// never applies part of its change.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/fluent/core/response"
//
//	b := response.New()
//	resp, err := b.Status(http.StatusCreated).
//		Set("X-Trace", "abc").
//		JSON(map[string]string{"id": "42"})
//	if err != nil {
//		return err
//	}
//
//	resp.StatusCode()          // 201
//	resp.Get("Content-Type")   // "application/json"
//
// # Redirects
//
//	b.Redirect("/login")                                       // 302
//	b.RedirectWithStatus("/new", http.StatusMovedPermanently)  // 301
//
// Redirects set Location and leave the body empty.
//
// # Streaming
//
// Stream keeps the reader it was given. Response.Stream returns the same
// value, and Render copies it to the client and closes it when possible:
//
//	f, _ := os.Open("report.csv")
//	resp, _ := b.Type("text/csv").Stream(f)
//
// # Empty Bodies
//
// Finalize and the redirect methods produce a response without a body;
// Send(nil) produces a zero-length body. Response.HasBody tells them apart,
// and Render sends Content-Length: 0 only for the latter.
//
// # Rendering
//
// Response.Render writes headers, status and body to an http.ResponseWriter.
// Header maps returned by Builder.HeaderMap and Response.Header are copies.
package response
