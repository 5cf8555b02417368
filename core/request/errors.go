package request

import "errors"

// ErrNilRequest is returned by New for a nil request or a request without a URL.
var ErrNilRequest = errors.New("request: nil request or URL")
