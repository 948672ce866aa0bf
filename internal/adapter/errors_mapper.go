package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return NewStatusError(resp.StatusCode(), body)
}

// NewStatusError builds the error returned for a non-2xx response with the
// given status code and body.
func NewStatusError(code int, body string) *StatusError {
	se := &StatusError{Code: code, Body: body}

	switch code {
	case http.StatusBadRequest:
		se.kind = ErrBadRequest
	case http.StatusUnauthorized:
		se.kind = ErrUnauthorized
	case http.StatusForbidden:
		se.kind = ErrForbidden
	case http.StatusNotFound, http.StatusGone:
		se.kind = ErrNotFound
	case http.StatusConflict:
		se.kind = ErrConflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		se.kind = ErrBadGateway
	case http.StatusInternalServerError:
		se.kind = ErrInternalServerError
	default:
		se.kind = ErrUnexpectedStatus
		if se.Body == "" {
			se.Body = http.StatusText(code)
		}
	}

	return se
}

// mapTransportError wraps an error returned before any response arrived.
// Context errors are kept as they are so callers can tell a deadline from a
// dead network.
func mapTransportError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}
