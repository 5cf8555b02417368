package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/core/handler"
	"github.com/dmitrymomot/fluent/middleware"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	mw := middleware.MetricsWithConfig(middleware.MetricsConfig{Registerer: reg, Namespace: "test"})

	serve(httptest.NewRequest(http.MethodGet, "/", nil), ok, mw)
	serve(httptest.NewRequest(http.MethodGet, "/", nil), ok, mw)
	serve(httptest.NewRequest(http.MethodPost, "/", nil), func(ctx *handler.Context) error {
		return errors.New("fail")
	}, mw)
	serve(httptest.NewRequest(http.MethodGet, "/", nil), func(ctx *handler.Context) error {
		_, err := ctx.Res.Redirect("/next")
		return err
	}, mw)

	expected := `
# HELP test_requests_total Number of finalized HTTP responses.
# TYPE test_requests_total counter
test_requests_total{code="200",method="GET"} 2
test_requests_total{code="302",method="GET"} 1
test_requests_total{code="500",method="POST"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_requests_total"))

	count, err := testutil.GatherAndCount(reg, "test_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMetricsDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	middleware.MetricsWithConfig(middleware.MetricsConfig{Registerer: reg})

	assert.Panics(t, func() {
		middleware.MetricsWithConfig(middleware.MetricsConfig{Registerer: reg})
	})
}

func TestMetricsCustomErrorHandlerStatus(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	h := handler.Adapt(func(ctx *handler.Context) error {
		return errors.New("gone")
	},
		handler.WithMiddleware(middleware.MetricsWithConfig(middleware.MetricsConfig{Registerer: reg, Namespace: "custom"})),
		handler.WithErrorHandler(func(ctx *handler.Context, err error) {
			_, _ = ctx.Res.Status(http.StatusGone).Finalize()
		}),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusGone, w.Code)
	expected := `
# HELP custom_requests_total Number of finalized HTTP responses.
# TYPE custom_requests_total counter
custom_requests_total{code="410",method="DELETE"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "custom_requests_total"))
}
