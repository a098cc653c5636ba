// Package backend is the HTTP request layer for the remote marketplace API.
// Every business operation in the frontend goes through the one client
// configured here: a single attempt per call, no retry, no caching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smallbiznis/vitrina/internal/config"
	"github.com/smallbiznis/vitrina/internal/metrics"
	"github.com/smallbiznis/vitrina/internal/observability"
	"go.uber.org/zap"
)

const (
	authScheme     = "JWT"
	requestTimeout = 12 * time.Second
)

type Client struct {
	baseURL string
	client  *http.Client
	metrics *metrics.Collector
	log     *zap.Logger
}

func New(cfg config.Config, mc *metrics.Collector, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BackendBaseURL, "/"),
		client: &http.Client{
			Timeout:   requestTimeout,
			Transport: observability.WrapTransport(nil),
		},
		metrics: mc,
		log:     log,
	}
}

// RequestOptions carries the per-call request configuration. Token and
// Locale translate into the Authorization and Accept-Language headers
// when present.
type RequestOptions struct {
	Token  string
	Locale string
	Query  url.Values
	Body   any
}

func (c *Client) Get(ctx context.Context, path string, opts RequestOptions, out any) error {
	return c.Do(ctx, http.MethodGet, path, opts, out)
}

func (c *Client) Post(ctx context.Context, path string, opts RequestOptions, out any) error {
	return c.Do(ctx, http.MethodPost, path, opts, out)
}

func (c *Client) Put(ctx context.Context, path string, opts RequestOptions, out any) error {
	return c.Do(ctx, http.MethodPut, path, opts, out)
}

func (c *Client) Delete(ctx context.Context, path string, opts RequestOptions, out any) error {
	return c.Do(ctx, http.MethodDelete, path, opts, out)
}

// Do performs one request against the backend and decodes the JSON
// response into out when out is non-nil. A non-2xx response becomes an
// *APIError carrying the numeric status and the backend's message.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions, out any) error {
	var bodyReader io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("backend: encode %s %s: %w", method, path, err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := strings.TrimSpace(opts.Token); token != "" {
		req.Header.Set("Authorization", authScheme+" "+token)
	}
	if locale := strings.TrimSpace(opts.Locale); locale != "" {
		req.Header.Set("Accept-Language", locale)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordBackendCall(method, 0, time.Since(start))
		}
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.RecordBackendCall(method, resp.StatusCode, time.Since(start))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode %s %s: %w", method, path, err)
	}
	return nil
}

type errorResponse struct {
	Message string `json:"message"`
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = strings.TrimSpace(body.Message)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
