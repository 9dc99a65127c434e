// Package gateway is the client-side session and request pipeline: a thin
// wrapper over http.Client that applies an explicit, ordered list of request
// and response hooks to every call. The bearer decorator and the response
// guardian are the two stages that make up the session gateway; callers can
// append their own.
package gateway

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

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single request round-trip.
const DefaultTimeout = 15 * time.Second

// Client issues JSON requests against a configured base URL, running every
// request through the hook chain in order.
type Client struct {
	httpClient *http.Client
	baseURL    string
	reqHooks   []RequestHook
	respHooks  []ResponseHook
	log        zerolog.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithRequestHooks(hooks ...RequestHook) ClientOption {
	return func(c *Client) {
		c.reqHooks = append(c.reqHooks, hooks...)
	}
}

func WithResponseHooks(hooks ...ResponseHook) ClientOption {
	return func(c *Client) {
		c.respHooks = append(c.respHooks, hooks...)
	}
}

func WithClientLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

func NewClient(baseURL string, options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET for path with optional query parameters, decoding the
// response body into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE for path.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do runs one request through the full pipeline: build, decorate via the
// request hooks, send, then pass response and error through the response
// hooks in order. Non-2xx statuses surface as *StatusError carrying the
// backend's message.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	for _, hook := range c.reqHooks {
		hook(req)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err == nil && resp.StatusCode >= http.StatusBadRequest {
		err = newStatusError(resp)
	}

	for _, hook := range c.respHooks {
		resp, err = hook(req, resp, err)
	}

	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
