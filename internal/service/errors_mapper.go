// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/lumina-sync/internal/adapter"
	"github.com/MKhiriev/lumina-sync/internal/parser"
)

// mapAdapterError translates an adapter or parser error into the service
// error taxonomy. The decision is made on status codes and sentinels only;
// the original error stays in the chain for logging.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrAuthRequired), errors.Is(err, ErrForbidden), errors.Is(err, ErrNotFound),
		errors.Is(err, ErrNetworkUnavailable), errors.Is(err, ErrParse), errors.Is(err, ErrServer),
		errors.Is(err, ErrTimeout):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	case errors.Is(err, parser.ErrParse), errors.Is(err, parser.ErrFieldType):
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	switch code := adapter.StatusCode(err); {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrAuthRequired, err)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, err)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case code != 0:
		return fmt.Errorf("%w: %w", ErrServer, err)
	}

	return err
}

// isRetryable reports whether a failed operation is worth replaying later.
// Rejections the server will repeat (bad request, forbidden, parse) are not.
func isRetryable(err error) bool {
	return errors.Is(err, ErrNetworkUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrAuthRequired) ||
		(errors.Is(err, ErrServer) && adapter.StatusCode(err) >= http.StatusInternalServerError)
}
