package request

import (
	"net/url"
	"slices"
	"strings"
)

// Query is a read-only multi-value view of the URL query string.
// Repeated keys keep the order in which they appeared.
type Query struct {
	values url.Values
}

// Get returns the first value for key, or "".
func (q Query) Get(key string) string {
	return q.values.Get(key)
}

// All returns every value for key in order of appearance.
// The returned slice is a copy.
func (q Query) All(key string) []string {
	return slices.Clone(q.values[key])
}

// Has reports whether key appeared in the query string, even with an empty value.
func (q Query) Has(key string) bool {
	return q.values.Has(key)
}

// Keys returns the distinct keys, sorted.
func (q Query) Keys() []string {
	keys := make([]string, 0, len(q.values))
	for k := range q.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of distinct keys.
func (q Query) Len() int {
	return len(q.values)
}

// parseQuery splits raw on '&' like url.ParseQuery, but never fails: a key or
// value that does not unescape is kept verbatim, and ';' is an ordinary
// character. Empty pairs are skipped.
func parseQuery(raw string) url.Values {
	values := make(url.Values)
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescapeLenient(key)
		values[key] = append(values[key], unescapeLenient(value))
	}
	return values
}

func unescapeLenient(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}
