package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/core/handler"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) handler.Middleware {
		return func(next handler.HandlerFunc) handler.HandlerFunc {
			return func(ctx *handler.Context) error {
				order = append(order, name+":before")
				err := next(ctx)
				order = append(order, name+":after")
				return err
			}
		}
	}

	h := handler.Chain([]handler.Middleware{mw("first"), mw("second")}, func(ctx *handler.Context) error {
		order = append(order, "endpoint")
		return nil
	})

	require.NoError(t, h(nil))
	assert.Equal(t, []string{
		"first:before",
		"second:before",
		"endpoint",
		"second:after",
		"first:after",
	}, order)
}

func TestChainWithoutMiddleware(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Chain(nil, func(ctx *handler.Context) error {
		called = true
		return nil
	})

	require.NoError(t, h(nil))
	assert.True(t, called)
}

func TestError(t *testing.T) {
	t.Parallel()

	err := handler.ErrBadRequest.WithMessage("name is required").WithDetails(map[string]any{"field": "name"})

	assert.Equal(t, "name is required", err.Error())
	assert.Equal(t, 400, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, map[string]any{"field": "name"}, err.Details)
	assert.Equal(t, "Bad Request", handler.ErrBadRequest.Message, "original must be unchanged")
}

func TestPanicError(t *testing.T) {
	t.Parallel()

	err := handler.PanicError("boom")
	assert.ErrorIs(t, err, handler.ErrPanic)
	assert.Contains(t, err.Error(), "boom")

	err = handler.PanicError(assert.AnError)
	assert.ErrorIs(t, err, handler.ErrPanic)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAsError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNotFound, handler.AsError(fmt.Errorf("load: %w", handler.ErrNotFound)).Status)
	assert.Equal(t, handler.ErrInternalServerError, handler.AsError(errors.New("boom")))
}
