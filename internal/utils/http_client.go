package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty.Client preconfigured for a JSON API.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures NewHTTPClient. Zero values leave the resty
// defaults in place.
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	RetryCount int
	RetryWait  time.Duration
	// RetryIf decides whether a failed attempt is repeated. Without it no
	// request is retried, whatever RetryCount says.
	RetryIf resty.RetryConditionFunc
}

// NewHTTPClient returns an independent client accepting JSON responses.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.RetryIf != nil && opts.RetryCount > 0 {
		client.
			SetRetryCount(opts.RetryCount).
			AddRetryCondition(opts.RetryIf)
		if opts.RetryWait > 0 {
			client.SetRetryWaitTime(opts.RetryWait)
		}
	}

	return &HTTPClient{Client: client}
}
