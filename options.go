package cfptime

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the production CFPTime API endpoint. The
	// trailing slash matters: relative paths are joined onto it.
	DefaultBaseURL = "https://api.cfptime.org/api/"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryOn    []int
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Use this to point the client at a
// test double instead of the production endpoint.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. When supplied, it takes
// precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries after the initial attempt for
// transient failures. Zero disables retries.
// Default: 3
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that count as transient.
// Default: 408, 429 and all 5xx
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithLogger sets a logger for request-level debug logging.
// Default: discard
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
