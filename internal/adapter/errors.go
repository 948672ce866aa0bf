package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by status code in mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNetwork wraps transport failures where no HTTP response was received.
	ErrNetwork = errors.New("network unavailable")
)

// StatusError is returned for every non-2xx response. It unwraps to the
// sentinel matching Code.
type StatusError struct {
	Code int
	Body string
	kind error
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.Code)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// StatusCode returns the HTTP status carried by err, or 0 when err holds no
// [*StatusError].
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
