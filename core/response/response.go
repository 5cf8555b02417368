package response

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

type bodyKind uint8

const (
	kindNone bodyKind = iota
	kindBytes
	kindStream
)

type body struct {
	kind    bodyKind
	payload []byte
	stream  io.Reader
}

func bytesBody(p []byte) body {
	return body{kind: kindBytes, payload: bytes.Clone(p)}
}

// Response is the immutable result of finalizing a Builder.
type Response struct {
	status int
	header http.Header
	body   body
}

// StatusCode returns the status code.
func (r *Response) StatusCode() int { return r.status }

// Header returns a copy of the response headers.
func (r *Response) Header() http.Header { return r.header.Clone() }

// Get returns the named header value, or "".
func (r *Response) Get(name string) string { return r.header.Get(name) }

// HasBody reports whether a body was set. A zero-length payload counts as a
// body; Finalize and redirects produce none.
func (r *Response) HasBody() bool { return r.body.kind != kindNone }

// Bytes returns a copy of the payload set by Send or JSON.
// It returns nil for streamed or absent bodies.
func (r *Response) Bytes() []byte {
	if r.body.kind != kindBytes {
		return nil
	}
	if r.body.payload == nil {
		return []byte{}
	}
	return bytes.Clone(r.body.payload)
}

// Stream returns the reader passed to Builder.Stream, or nil.
func (r *Response) Stream() io.Reader {
	if r.body.kind != kindStream {
		return nil
	}
	return r.body.stream
}

// Body returns a reader over the body. Streamed bodies are returned as-is;
// an absent body yields http.NoBody.
func (r *Response) Body() io.Reader {
	switch r.body.kind {
	case kindBytes:
		return bytes.NewReader(r.body.payload)
	case kindStream:
		return r.body.stream
	default:
		return http.NoBody
	}
}

// Render writes the response to w. A streamed body is copied and then closed
// if it implements io.Closer. A status outside 100-999 is not sent: Render
// writes a bare 500 instead and returns ErrInvalidStatus.
func (r *Response) Render(w http.ResponseWriter) error {
	if r.status != 0 && (r.status < 100 || r.status > 999) {
		if c, ok := r.body.stream.(io.Closer); ok {
			_ = c.Close()
		}
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("%w: %d", ErrInvalidStatus, r.status)
	}

	h := w.Header()
	for k, v := range r.header {
		h[k] = append([]string(nil), v...)
	}

	if r.body.kind == kindBytes && h.Get("Content-Length") == "" {
		h.Set("Content-Length", strconv.Itoa(len(r.body.payload)))
	}

	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	switch r.body.kind {
	case kindBytes:
		if len(r.body.payload) > 0 {
			_, err := w.Write(r.body.payload)
			return err
		}
	case kindStream:
		if r.body.stream == nil {
			return nil
		}
		if c, ok := r.body.stream.(io.Closer); ok {
			defer c.Close()
		}
		if _, err := io.Copy(w, r.body.stream); err != nil {
			return err
		}
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}

	return nil
}
