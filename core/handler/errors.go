package handler

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an HTTP error that the default error handler renders as JSON.
type Error struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e Error) WithDetails(details map[string]any) Error {
	e.Details = details
	return e
}

var (
	ErrBadRequest            = Error{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: http.StatusText(http.StatusBadRequest)}
	ErrNotFound              = Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: http.StatusText(http.StatusNotFound)}
	ErrRequestEntityTooLarge = Error{Status: http.StatusRequestEntityTooLarge, Code: "REQUEST_ENTITY_TOO_LARGE", Message: http.StatusText(http.StatusRequestEntityTooLarge)}
	ErrUnsupportedMediaType  = Error{Status: http.StatusUnsupportedMediaType, Code: "UNSUPPORTED_MEDIA_TYPE", Message: http.StatusText(http.StatusUnsupportedMediaType)}
	ErrInternalServerError   = Error{Status: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: http.StatusText(http.StatusInternalServerError)}
)

// AsError returns the Error found in err's chain, or ErrInternalServerError.
func AsError(err error) Error {
	var httpErr Error
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return ErrInternalServerError
}

// ErrPanic wraps values recovered from panicking handlers.
var ErrPanic = errors.New("handler panicked")

// PanicError converts a recovered value into an error wrapping ErrPanic.
func PanicError(v any) error {
	switch e := v.(type) {
	case error:
		return fmt.Errorf("%w: %w", ErrPanic, e)
	default:
		return fmt.Errorf("%w: %v", ErrPanic, e)
	}
}
