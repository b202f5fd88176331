// Package api is the thin HTTP layer in front of the remote task API. It does
// no retries and no backoff: a failed call is a failed request.
package api

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

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/config"
)

// StatusError is returned for any non-2xx response, carrying the status code
// and whatever error body the API sent (decoded when it is JSON).
type StatusError struct {
	StatusCode       int
	Message          string
	ValidationErrors map[string]string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: unexpected status %d: %s", e.StatusCode, e.Message)
}

// Client issues requests against {baseURL}{basePath}/{endpoint}. Endpoints are
// passed without leading or trailing slashes ("tasks", "tasks/123").
type Client struct {
	baseURL  string
	basePath string
	http     *http.Client
}

func New(cfg config.APIConfig) *Client {
	timeout := cfg.Timeout.Duration()
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		basePath: cfg.BasePath,
		http:     &http.Client{Timeout: timeout},
	}
}

func (c *Client) endpointURL(endpoint string) string {
	return c.baseURL + c.basePath + "/" + endpoint
}

// Get issues a GET with optional query parameters, decoding a 2xx body into out.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := c.endpointURL(endpoint)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

// Post issues a POST with a JSON body, decoding a 2xx body into out.
func (c *Client) Post(ctx context.Context, endpoint string, body any, out any) error {
	return c.send(ctx, http.MethodPost, endpoint, body, out)
}

// Put issues a PUT with a JSON body, decoding a 2xx body into out.
func (c *Client) Put(ctx context.Context, endpoint string, body any, out any) error {
	return c.send(ctx, http.MethodPut, endpoint, body, out)
}

// Delete issues a DELETE, discarding any response body.
func (c *Client) Delete(ctx context.Context, endpoint string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpointURL(endpoint), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, nil)
}

func (c *Client) send(ctx context.Context, method, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL(endpoint), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newStatusError(status int, body []byte) *StatusError {
	se := &StatusError{StatusCode: status}
	var errBody struct {
		Message          string            `json:"message"`
		ValidationErrors map[string]string `json:"validationErrors"`
	}
	if json.Unmarshal(body, &errBody) == nil {
		se.Message = errBody.Message
		se.ValidationErrors = errBody.ValidationErrors
	}
	return se
}
