package service

import "errors"

var (
	// ErrAuthRequired is returned when there is no signed-in user or the
	// session token is empty or expired.
	ErrAuthRequired = errors.New("authentication required")
	// ErrForbidden is returned when the entity belongs to another user, or
	// the server rejected the request for the same reason.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when the entity is unknown locally and on the server.
	ErrNotFound = errors.New("entity not found")
	// ErrNetworkUnavailable is returned when the server cannot be reached.
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrParse is returned when a server response could not be read.
	ErrParse = errors.New("unreadable server response")
	// ErrServer is the catch-all for every other non-2xx response.
	ErrServer = errors.New("server error")
	// ErrTimeout is returned by the coordinator when an operation does not
	// finish within its deadline.
	ErrTimeout = errors.New("operation timed out")

	ErrSyncIncomplete      = errors.New("some pending operations were not synced")
	ErrOperationInProgress = errors.New("another operation on this entity is in progress")
)
