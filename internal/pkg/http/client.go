package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/tumpang/internal/pkg/retry"
)

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client is a small JSON client for outbound calls. 5xx responses and
// transport errors are retried; 4xx responses are not.
type Client struct {
	httpClient *http.Client
	retrier    *retry.Retrier
}

// NewClient creates a new HTTP client
func NewClient(timeout time.Duration, retrier *retry.Retrier) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if retrier == nil {
		retrier = retry.NewWithDefaults(nil)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		retrier:    retrier,
	}
}

// PostForm sends form-encoded values and decodes the JSON response into out
func (c *Client) PostForm(ctx context.Context, endpoint string, values url.Values, out interface{}) error {
	encoded := values.Encode()
	return c.do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}, out)
}

// GetJSON performs a GET with an optional bearer token and decodes the JSON response into out
func (c *Client) GetJSON(ctx context.Context, endpoint, bearer string, out interface{}) error {
	return c.do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		return req, nil
	}, out)
}

func (c *Client) do(ctx context.Context, build func(context.Context) (*http.Request, error), out interface{}) error {
	return c.retrier.Execute(ctx, func(ctx context.Context) error {
		req, err := build(ctx)
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to build request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request to %s failed: %w", req.URL.Host, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode >= 500 {
			return &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
		}
		if resp.StatusCode >= 300 {
			return retry.Permanent(&HTTPError{StatusCode: resp.StatusCode, Body: string(body)})
		}

		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return retry.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	})
}
