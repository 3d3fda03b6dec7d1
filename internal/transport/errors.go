package transport

import (
	"errors"
	"fmt"
)

// RequestError represents a failed request: either the server answered with
// a non-2xx status or the request never completed (Status 0).
type RequestError struct {
	// Status is the HTTP status code, 0 when no response was received.
	Status int

	// Exception is the server's error message, when the body carried one.
	Exception string

	// ExceptionClass is the server-side exception type, when present.
	ExceptionClass string

	// Method and URL identify the request.
	Method string
	URL    string

	// RequestID is the X-Request-Id sent with the request.
	RequestID string

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v (request=%s)", e.Method, e.URL, e.Err, e.RequestID)
	case e.Exception != "":
		return fmt.Sprintf("%s %s: status %d: %s (request=%s)", e.Method, e.URL, e.Status, e.Exception, e.RequestID)
	default:
		return fmt.Sprintf("%s %s: status %d (request=%s)", e.Method, e.URL, e.Status, e.RequestID)
	}
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err, or 0.
// Uses errors.As to handle wrapped errors.
func StatusOf(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}
