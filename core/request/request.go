package request

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// Request is a read-oriented view over an incoming *http.Request and the
// route parameters resolved for it. URL-derived fields are computed once in New.
type Request struct {
	raw    *http.Request
	params map[string]string
	query  Query

	path        string
	hostname    string
	protocol    string
	originalURL string

	// Body holds the parsed request body. It is nil until a body-parsing
	// collaborator assigns it; no type is imposed.
	Body any

	// RawBody holds the unparsed request body bytes, if some collaborator read them.
	RawBody []byte
}

// New wraps raw and params. The raw request is referenced, not copied.
// A nil params map is replaced with an empty one.
func New(raw *http.Request, params map[string]string) (*Request, error) {
	if raw == nil || raw.URL == nil {
		return nil, ErrNilRequest
	}

	if params == nil {
		params = map[string]string{}
	}

	return &Request{
		raw:         raw,
		params:      params,
		query:       Query{values: parseQuery(raw.URL.RawQuery)},
		path:        raw.URL.Path,
		hostname:    hostname(raw),
		protocol:    protocol(raw),
		originalURL: originalURL(raw),
	}, nil
}

// Get returns the value of the named header, or "" if it is absent.
// Lookup is case-insensitive.
func (r *Request) Get(name string) string {
	return r.raw.Header.Get(name)
}

// Header is like Get but also reports whether the header was present.
func (r *Request) Header(name string) (string, bool) {
	values := r.raw.Header.Values(name)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Raw returns the wrapped request.
func (r *Request) Raw() *http.Request { return r.raw }

// Context returns the wrapped request's context.
func (r *Request) Context() context.Context { return r.raw.Context() }

// Method returns the HTTP method.
func (r *Request) Method() string { return r.raw.Method }

// Params returns the route parameters supplied at construction.
func (r *Request) Params() map[string]string { return r.params }

// Param returns a single route parameter, or "" if it is not set.
func (r *Request) Param(name string) string { return r.params[name] }

// Query returns the parsed query string.
func (r *Request) Query() Query { return r.query }

// Path returns the URL path, e.g. "/users".
func (r *Request) Path() string { return r.path }

// Hostname returns the host without port.
func (r *Request) Hostname() string { return r.hostname }

// Protocol returns the scheme without the trailing ':' ("http" or "https").
func (r *Request) Protocol() string { return r.protocol }

// OriginalURL returns the request URI as received: path plus raw query.
func (r *Request) OriginalURL() string { return r.originalURL }

func hostname(raw *http.Request) string {
	if h := raw.URL.Hostname(); h != "" {
		return h
	}
	host := raw.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		return strings.Trim(h, "[]")
	}
	return strings.Trim(host, "[]")
}

func protocol(raw *http.Request) string {
	if raw.URL.Scheme != "" {
		return strings.ToLower(strings.TrimSuffix(raw.URL.Scheme, ":"))
	}
	if raw.TLS != nil {
		return "https"
	}
	return "http"
}

func originalURL(raw *http.Request) string {
	if raw.RequestURI != "" {
		return raw.RequestURI
	}
	return raw.URL.RequestURI()
}
