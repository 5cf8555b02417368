package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/dmitrymomot/fluent/core/handler"
)

// testLogHandler captures log entries for testing
type testLogHandler struct {
	mu      sync.Mutex
	entries []map[string]any
}

func (h *testLogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *testLogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" {
			entry[a.Key] = a.Value.Any()
		}
		return true
	})

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()
	return nil
}

func (h *testLogHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *testLogHandler) WithGroup(string) slog.Handler { return h }

func (h *testLogHandler) all() []map[string]any {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]map[string]any(nil), h.entries...)
}

// serve runs endpoint behind middlewares for a single request.
func serve(req *http.Request, endpoint handler.HandlerFunc, middlewares ...handler.Middleware) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.Adapt(endpoint, handler.WithMiddleware(middlewares...)).ServeHTTP(w, req)
	return w
}

func ok(ctx *handler.Context) error {
	_, err := ctx.Res.SendString("ok")
	return err
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
