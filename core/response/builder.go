package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
)

// state is the builder lifecycle. The only transition is writable -> finalized.
type state uint8

const (
	stateWritable state = iota
	stateFinalized
)

// Builder accumulates status, headers and body, and produces an immutable
// Response exactly once. It is not safe for concurrent use; a request's
// middleware chain is expected to use it sequentially.
type Builder struct {
	state  state
	status int
	header http.Header
	body   body
	err    error
	result *Response
}

// New returns a writable builder with status 200 and no headers.
func New() *Builder {
	return &Builder{
		status: http.StatusOK,
		header: make(http.Header),
	}
}

// guard reports whether the builder may still change. Once finalized it
// records ErrFinalized and returns it.
func (b *Builder) guard() error {
	if b.state == stateFinalized {
		b.err = ErrFinalized
		return ErrFinalized
	}
	return nil
}

// Status sets the status code. The code is not validated.
func (b *Builder) Status(code int) *Builder {
	if b.guard() != nil {
		return b
	}
	b.status = code
	return b
}

// Set sets a header, replacing any previous value for the same name
// regardless of case.
func (b *Builder) Set(name, value string) *Builder {
	if b.guard() != nil {
		return b
	}
	b.header.Set(name, value)
	return b
}

// Headers sets every entry of h. Entries are applied in sorted key order, so
// when h holds case variants of one name the last in that order wins.
func (b *Builder) Headers(h map[string]string) *Builder {
	if b.guard() != nil {
		return b
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		b.header.Set(k, h[k])
	}
	return b
}

// Type sets the Content-Type header.
func (b *Builder) Type(mime string) *Builder {
	return b.Set("Content-Type", mime)
}

// Cookie is not implemented; it records ErrNotImplemented and changes nothing.
func (b *Builder) Cookie(*http.Cookie) *Builder {
	if b.guard() != nil {
		return b
	}
	b.err = ErrNotImplemented
	return b
}

// StatusCode returns the current status code.
func (b *Builder) StatusCode() int { return b.status }

// Header returns the current value of the named header, or "".
func (b *Builder) Header(name string) string { return b.header.Get(name) }

// HeaderMap returns a copy of the current headers. Changing the copy does not
// affect the builder.
func (b *Builder) HeaderMap() http.Header { return b.header.Clone() }

// Finalized reports whether a finalizing method has been called.
func (b *Builder) Finalized() bool { return b.state == stateFinalized }

// Err returns the error recorded by the last rejected chained call, if any.
func (b *Builder) Err() error { return b.err }

// Response returns the produced response once the builder is finalized.
func (b *Builder) Response() (*Response, bool) {
	return b.result, b.result != nil
}

// Send finalizes with body as the payload.
func (b *Builder) Send(body []byte) (*Response, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}
	b.body = bytesBody(body)
	return b.finalize(), nil
}

// SendString finalizes with s as the payload.
func (b *Builder) SendString(s string) (*Response, error) {
	return b.Send([]byte(s))
}

// JSON encodes v and finalizes with Content-Type application/json, replacing
// any type set earlier. If encoding fails the builder is left untouched.
func (b *Builder) JSON(v any) (*Response, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSONEncode, err)
	}
	b.header.Set("Content-Type", "application/json")
	b.body = bytesBody(data)
	return b.finalize(), nil
}

// Stream finalizes with r as the body. The produced response holds r itself.
func (b *Builder) Stream(r io.Reader) (*Response, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}
	b.body = body{kind: kindStream, stream: r}
	return b.finalize(), nil
}

// Redirect finalizes a 302 Found redirect to url.
func (b *Builder) Redirect(url string) (*Response, error) {
	return b.RedirectWithStatus(url, http.StatusFound)
}

// RedirectWithStatus finalizes a redirect to url with the given status.
// Choosing a 3xx code is the caller's responsibility. The body is left empty.
func (b *Builder) RedirectWithStatus(url string, code int) (*Response, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}
	b.status = code
	b.header.Set("Location", url)
	b.body = body{}
	return b.finalize(), nil
}

// Finalize freezes the builder with whatever status, headers and body it holds.
// Called directly it produces a response without a body, e.g. for 204.
func (b *Builder) Finalize() (*Response, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}
	return b.finalize(), nil
}

func (b *Builder) finalize() *Response {
	b.state = stateFinalized
	b.result = &Response{
		status: b.status,
		header: b.header.Clone(),
		body:   b.body,
	}
	return b.result
}
