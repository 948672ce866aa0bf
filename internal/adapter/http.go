package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/utils"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress,
// applies the request timeout and configures retries for idempotent
// requests only, so a create is never sent twice by the transport.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Timeout:    adapterCfg.RequestTimeout,
		UserAgent:  userAgent(appCfg),
		RetryCount: adapterCfg.RetryCount,
		RetryWait:  adapterCfg.RetryWait,
		RetryIf:    retryIdempotent,
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func userAgent(appCfg config.ClientApp) string {
	name := appCfg.Name
	if name == "" {
		name = "lumina-sync"
	}
	if appCfg.Version == "" {
		return name
	}
	return name + "/" + appCfg.Version
}

// retryIdempotent allows a retry only for methods that are safe to repeat
// and only when the request failed in transport or with a 5xx.
func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}

	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
	default:
		return false
	}

	return err != nil || resp.StatusCode() >= http.StatusInternalServerError
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [ServerAdapter].
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	_, err := h.client.R().
		SetContext(ctx).
		Head("/api/health")
	if err != nil {
		return mapTransportError("ping", err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// execute sends req and returns the body of a 2xx response.
func (h *httpServerAdapter) execute(req *resty.Request, method, path string) ([]byte, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("func", "httpServerAdapter.execute").
			Str("method", method).
			Str("path", path).
			Msg("request failed before a response was received")
		return nil, mapTransportError(method+" "+path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpServerAdapter.execute").
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("server rejected request")
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	req := h.authedRequest(ctx).SetPathParams(params)
	return h.execute(req, http.MethodGet, path)
}

func (h *httpServerAdapter) sendJSON(ctx context.Context, method, path string, params map[string]string, body any) ([]byte, error) {
	req := h.authedRequest(ctx).
		SetPathParams(params).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	return h.execute(req, method, path)
}

func limitParam(limit int) string {
	if limit <= 0 {
		limit = 20
	}
	return strconv.Itoa(limit)
}
