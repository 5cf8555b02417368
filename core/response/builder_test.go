package response_test

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/core/response"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	b := response.New()

	assert.Equal(t, http.StatusOK, b.StatusCode())
	assert.Empty(t, b.HeaderMap())
	assert.False(t, b.Finalized())
	assert.NoError(t, b.Err())

	resp, ok := b.Response()
	assert.False(t, ok)
	assert.Nil(t, resp)
}

func TestBuilderLastWriteWins(t *testing.T) {
	t.Parallel()

	b := response.New().
		Status(http.StatusCreated).
		Status(http.StatusAccepted).
		Set("X-Custom", "one").
		Set("x-custom", "two").
		Type("text/plain").
		Type("text/html")

	assert.Equal(t, http.StatusAccepted, b.StatusCode())
	assert.Equal(t, "two", b.Header("X-Custom"))
	assert.Equal(t, "two", b.Header("x-CUSTOM"))
	assert.Equal(t, "text/html", b.Header("Content-Type"))
	assert.Len(t, b.HeaderMap(), 2)
}

func TestBuilderStatusNotValidated(t *testing.T) {
	t.Parallel()

	b := response.New().Status(999)
	assert.Equal(t, 999, b.StatusCode())
}

func TestBuilderHeaders(t *testing.T) {
	t.Parallel()

	t.Run("sets_all_entries", func(t *testing.T) {
		t.Parallel()

		b := response.New().Set("X-Old", "keep").Headers(map[string]string{
			"X-One": "1",
			"X-Two": "2",
		})

		assert.Equal(t, "keep", b.Header("X-Old"))
		assert.Equal(t, "1", b.Header("X-One"))
		assert.Equal(t, "2", b.Header("X-Two"))
	})

	t.Run("overwrites_existing", func(t *testing.T) {
		t.Parallel()

		b := response.New().Set("X-One", "old").Headers(map[string]string{"x-one": "new"})
		assert.Equal(t, "new", b.Header("X-One"))
	})

	t.Run("case_variants_resolve_in_sorted_order", func(t *testing.T) {
		t.Parallel()

		b := response.New().Headers(map[string]string{
			"Content-Type": "text/plain",
			"content-type": "text/html",
		})
		assert.Equal(t, "text/html", b.Header("Content-Type"))
	})
}

func TestHeaderMapIsCopy(t *testing.T) {
	t.Parallel()

	b := response.New().Set("X-Test", "value")

	h := b.HeaderMap()
	h.Set("X-Test", "changed")
	h.Set("X-Injected", "yes")

	assert.Equal(t, "value", b.Header("X-Test"))
	assert.Empty(t, b.Header("X-Injected"))
}

func TestSend(t *testing.T) {
	t.Parallel()

	b := response.New().Status(http.StatusCreated).Type("text/plain")
	resp, err := b.SendString("hello")
	require.NoError(t, err)

	assert.True(t, b.Finalized())
	assert.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Equal(t, "text/plain", resp.Get("Content-Type"))
	assert.True(t, resp.HasBody())
	assert.Equal(t, []byte("hello"), resp.Bytes())
	assert.Nil(t, resp.Stream())

	got, ok := b.Response()
	assert.True(t, ok)
	assert.Same(t, resp, got)
}

func TestSendCopiesPayload(t *testing.T) {
	t.Parallel()

	payload := []byte("abc")
	resp, err := response.New().Send(payload)
	require.NoError(t, err)

	payload[0] = 'x'
	assert.Equal(t, []byte("abc"), resp.Bytes())

	out := resp.Bytes()
	out[0] = 'y'
	assert.Equal(t, []byte("abc"), resp.Bytes())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data any
	}{
		{name: "map", data: map[string]any{"name": "alice", "age": float64(30)}},
		{name: "slice", data: []any{"a", float64(1), true, nil}},
		{name: "string", data: "plain"},
		{name: "nil", data: nil},
		{name: "nested", data: map[string]any{"user": map[string]any{"tags": []any{"js", "node"}}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := response.New().Type("text/html")
			resp, err := b.JSON(tt.data)
			require.NoError(t, err)

			assert.Equal(t, "application/json", resp.Get("Content-Type"))

			var decoded any
			require.NoError(t, json.Unmarshal(resp.Bytes(), &decoded))
			assert.Equal(t, tt.data, decoded)
		})
	}
}

func TestJSONEncodeFailureLeavesBuilderWritable(t *testing.T) {
	t.Parallel()

	b := response.New().Type("text/plain")
	resp, err := b.JSON(math.Inf(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, response.ErrJSONEncode)
	assert.Nil(t, resp)
	assert.False(t, b.Finalized())
	assert.Equal(t, "text/plain", b.Header("Content-Type"))

	_, err = b.SendString("fallback")
	assert.NoError(t, err)
}

func TestStreamKeepsIdentity(t *testing.T) {
	t.Parallel()

	src := strings.NewReader("streamed data")
	resp, err := response.New().Stream(src)
	require.NoError(t, err)

	assert.Same(t, src, resp.Stream())
	assert.Same(t, src, resp.Body())
	assert.True(t, resp.HasBody())
	assert.Nil(t, resp.Bytes())
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		code     int
		expected int
	}{
		{name: "default_found", url: "/login", expected: http.StatusFound},
		{name: "moved_permanently", url: "https://example.com/new", code: http.StatusMovedPermanently, expected: http.StatusMovedPermanently},
		{name: "see_other", url: "/done?x=1", code: http.StatusSeeOther, expected: http.StatusSeeOther},
		{name: "temporary", url: "/tmp", code: http.StatusTemporaryRedirect, expected: http.StatusTemporaryRedirect},
		{name: "permanent", url: "/perm", code: http.StatusPermanentRedirect, expected: http.StatusPermanentRedirect},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := response.New().Status(http.StatusTeapot)

			var (
				resp *response.Response
				err  error
			)
			if tt.code == 0 {
				resp, err = b.Redirect(tt.url)
			} else {
				resp, err = b.RedirectWithStatus(tt.url, tt.code)
			}
			require.NoError(t, err)

			assert.Equal(t, tt.expected, resp.StatusCode())
			assert.Equal(t, tt.url, resp.Get("Location"))
			assert.False(t, resp.HasBody())
		})
	}
}

func TestFinalizeWithoutBody(t *testing.T) {
	t.Parallel()

	resp, err := response.New().Status(http.StatusNoContent).Finalize()
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.False(t, resp.HasBody())
	assert.Nil(t, resp.Bytes())

	n, err := io.Copy(io.Discard, resp.Body())
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestSendNilIsZeroLengthBody(t *testing.T) {
	t.Parallel()

	resp, err := response.New().Send(nil)
	require.NoError(t, err)

	assert.True(t, resp.HasBody())
	assert.Equal(t, []byte{}, resp.Bytes())
}

func TestMutationAfterFinalize(t *testing.T) {
	t.Parallel()

	finalizers := map[string]func(b *response.Builder) (*response.Response, error){
		"send":     func(b *response.Builder) (*response.Response, error) { return b.SendString("x") },
		"json":     func(b *response.Builder) (*response.Response, error) { return b.JSON(map[string]int{"a": 1}) },
		"stream":   func(b *response.Builder) (*response.Response, error) { return b.Stream(strings.NewReader("x")) },
		"redirect": func(b *response.Builder) (*response.Response, error) { return b.Redirect("/x") },
		"finalize": func(b *response.Builder) (*response.Response, error) { return b.Finalize() },
	}

	for name, finalize := range finalizers {
		name, finalize := name, finalize
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := response.New().Set("X-Before", "1")
			first, err := finalize(b)
			require.NoError(t, err)
			require.True(t, b.Finalized())

			status := b.StatusCode()
			headers := b.HeaderMap()

			b.Status(http.StatusTeapot)
			assert.ErrorIs(t, b.Err(), response.ErrFinalized)
			b.Set("X-After", "1")
			b.Headers(map[string]string{"X-Batch": "1"})
			b.Type("text/csv")

			for other, again := range finalizers {
				resp, err := again(b)
				assert.ErrorIs(t, err, response.ErrFinalized, other)
				assert.Nil(t, resp, other)
			}

			assert.True(t, b.Finalized())
			assert.Equal(t, status, b.StatusCode())
			assert.Equal(t, headers, b.HeaderMap())

			got, ok := b.Response()
			require.True(t, ok)
			assert.Same(t, first, got)
			assert.Equal(t, headers, first.Header())
		})
	}
}

func TestResponseHeadersIndependentOfBuilder(t *testing.T) {
	t.Parallel()

	b := response.New().Set("X-Test", "value")
	resp, err := b.Finalize()
	require.NoError(t, err)

	h := resp.Header()
	h.Set("X-Test", "changed")
	assert.Equal(t, "value", resp.Get("X-Test"))

	bh := b.HeaderMap()
	bh.Set("X-Test", "changed")
	assert.Equal(t, "value", resp.Get("X-Test"))
}

func TestCookieNotImplemented(t *testing.T) {
	t.Parallel()

	b := response.New()
	b.Cookie(&http.Cookie{Name: "session", Value: "abc"})

	assert.True(t, errors.Is(b.Err(), response.ErrNotImplemented))
	assert.Empty(t, b.Header("Set-Cookie"))
	assert.False(t, b.Finalized())
}
