package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const decodeErrorBodyLimit = 256

// Config holds construction parameters for the API client.
type Config struct {
	// BaseURL is the root all relative paths resolve against. Required.
	BaseURL string
	// HTTPClient overrides the default HTTP client. Optional.
	HTTPClient *http.Client
	// Timeout applies to each request when HTTPClient is not supplied.
	Timeout time.Duration
	// Retry overrides the default retry policy. Optional.
	Retry *Policy
	// Logger receives debug logging for each request. Optional.
	Logger *slog.Logger
}

// Client is the HTTP transport for the CFPTime API. It is safe for
// concurrent use and holds no mutable state after construction.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	retry      *Policy
	logger     *slog.Logger
}

// New creates an API client. It fails when the base URL is missing or
// cannot be parsed into an absolute URL.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("base URL %q is not absolute", cfg.BaseURL)
	}
	// Relative references resolve against the last path segment, so the
	// base path must end with a slash for paths to compose correctly.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	retry := cfg.Retry
	if retry == nil {
		retry = DefaultPolicy()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		retry:      retry,
		logger:     logger,
	}, nil
}

// BaseURL returns the resolved base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// resolve joins a relative path onto the base URL. A leading slash on
// the path would resolve against the host root and silently drop the
// base path, so it is stripped first.
func (c *Client) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse path %q: %w", path, err)
	}
	return c.baseURL.ResolveReference(ref), nil
}

// newRequest builds a request against the resolved URL. GET and DELETE
// never carry a payload, even when one is supplied.
func (c *Client) newRequest(ctx context.Context, method string, u *url.URL, payload []byte) (*http.Request, error) {
	var body io.Reader
	if len(payload) > 0 && method != http.MethodGet && method != http.MethodDelete {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// Do issues one request and decodes a 200 response body into result.
// Send failures and transient statuses are retried per the retry policy
// before the outcome is surfaced; every other failure is surfaced once.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	u, err := c.resolve(path)
	if err != nil {
		return &NetworkError{Err: err, URL: path}
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return &NetworkError{Err: fmt.Errorf("marshal request body: %w", err), URL: u.String()}
		}
	}

	var (
		status   int
		respBody []byte
		attempts int
	)

	operation := func() error {
		attempts++

		req, err := c.newRequest(ctx, method, u, payload)
		if err != nil {
			return backoff.Permanent(&NetworkError{Err: err, URL: u.String(), Attempts: attempts})
		}

		c.logger.DebugContext(ctx, "issuing request",
			"method", method,
			"url", u.String(),
			"attempt", attempts,
		)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &NetworkError{Err: err, URL: u.String(), Attempts: attempts}
		}

		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return &NetworkError{
				Err:      fmt.Errorf("read response body: %w", readErr),
				URL:      u.String(),
				Attempts: attempts,
			}
		}

		status = resp.StatusCode
		respBody = data

		if status != http.StatusOK && c.retry.Retryable(status) {
			c.logger.DebugContext(ctx, "transient status, will retry",
				"status", status,
				"url", u.String(),
				"attempt", attempts,
			)
			return &APIError{StatusCode: status, Body: string(data)}
		}

		return nil
	}

	if err := backoff.Retry(operation, c.retry.BackOff(ctx)); err != nil {
		c.logger.DebugContext(ctx, "request failed",
			"url", u.String(),
			"attempts", attempts,
			"error", err,
		)
		return err
	}

	if status != http.StatusOK {
		c.logger.DebugContext(ctx, "non-success status",
			"status", status,
			"url", u.String(),
		)
		return &APIError{StatusCode: status, Body: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &DecodeError{Err: err, Body: bodySnippet(respBody)}
		}
	}

	c.logger.DebugContext(ctx, "request succeeded",
		"status", status,
		"url", u.String(),
	)

	return nil
}

func bodySnippet(body []byte) string {
	if len(body) > decodeErrorBodyLimit {
		return string(body[:decodeErrorBodyLimit]) + "..."
	}
	return string(body)
}
