package response

import "errors"

var (
	// ErrFinalized is returned by every mutating or finalizing call made
	// after the builder has produced its response.
	ErrFinalized = errors.New("response: already finalized")

	ErrJSONEncode     = errors.New("response: failed to encode JSON")
	ErrNotImplemented = errors.New("response: not implemented")

	// ErrInvalidStatus is returned by Render for a status net/http cannot send.
	ErrInvalidStatus = errors.New("response: invalid status code")
)
