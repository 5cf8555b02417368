// Package request provides a read-oriented view over an incoming *http.Request.
//
// A Request decomposes the URL once at construction (path, hostname, protocol,
// original URL and query) and exposes header lookup and route parameters.
// Route parameters are computed by an external router and handed in as a map.
//
// Basic usage:
//
//	req, err := request.New(r, map[string]string{"id": "123"})
//	if err != nil {
//		return err
//	}
//
//	req.Path()              // "/users/123"
//	req.Param("id")         // "123"
//	req.Query().Get("sort") // "asc"
//	req.Query().All("tag")  // []string{"js", "node"}
//	req.Get("content-type") // same as req.Get("Content-Type")
//
// # Body Slots
//
// Body and RawBody are plain fields left empty by New. Body-parsing middleware
// fills them; Request imposes no type or validation on what is stored.
//
// # Errors
//
// New returns ErrNilRequest for a nil request or URL. The query string is
// parsed leniently: anything net/http accepted yields a Request. A pair that
// does not unescape, like "discount=100%", keeps its raw text, and ';' is not
// a separator, so "a=1;b=2" gives a = "1;b=2".
package request
