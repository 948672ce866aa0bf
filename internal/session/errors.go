package session

import "errors"

var (
	// ErrNoToken is returned when neither the token file nor the
	// configuration provides a token.
	ErrNoToken = errors.New("no session token")
	// ErrMalformedTokenFile is returned when the token file exists but
	// holds neither JSON nor a bare token.
	ErrMalformedTokenFile = errors.New("malformed token file")
)
