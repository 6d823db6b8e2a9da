package cfptime

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/cfptime/client-go/internal/api"
)

// Client is a read-only client for the CFPTime API. It holds no mutable
// state after construction and is safe for concurrent use.
type Client struct {
	api *api.Client
}

// New creates a CFPTime client pointed at the production API. Options
// override the endpoint, timeout, retry policy, HTTP client and logger.
// Construction fails when the configured base URL cannot be parsed.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
		retries: defaultMaxRetries,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	retry := api.DefaultPolicy()
	retry.MaxRetries = cfg.retries
	if len(cfg.retryOn) > 0 {
		retryOn := slices.Clone(cfg.retryOn)
		retry.RetryableOn = func(statusCode int) bool {
			return slices.Contains(retryOn, statusCode)
		}
	}

	apiClient, err := api.New(api.Config{
		BaseURL:    cfg.baseURL,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		Retry:      retry,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build API client: %w", err)
	}

	return &Client{api: apiClient}, nil
}

// BaseURL returns the base URL the client resolves endpoint paths
// against.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// GetCFPs lists all conferences with an open call for papers, in the
// order the server returns them.
func (c *Client) GetCFPs(ctx context.Context) ([]Conference, error) {
	var confs []Conference
	if err := c.api.Do(ctx, http.MethodGet, "cfps", nil, &confs); err != nil {
		return nil, wrapError(err)
	}
	return confs, nil
}

// GetCFP retrieves a single call for papers by ID.
func (c *Client) GetCFP(ctx context.Context, id int) (*Conference, error) {
	var conf Conference
	path := fmt.Sprintf("cfps/%d/", id)
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &conf); err != nil {
		return nil, wrapError(err)
	}
	return &conf, nil
}

// GetConferences lists all conferences in the directory, in the order
// the server returns them.
func (c *Client) GetConferences(ctx context.Context) ([]Conference, error) {
	var confs []Conference
	if err := c.api.Do(ctx, http.MethodGet, "conferences", nil, &confs); err != nil {
		return nil, wrapError(err)
	}
	return confs, nil
}

// GetConference retrieves a single conference by ID.
func (c *Client) GetConference(ctx context.Context, id int) (*Conference, error) {
	var conf Conference
	path := fmt.Sprintf("conferences/%d/", id)
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &conf); err != nil {
		return nil, wrapError(err)
	}
	return &conf, nil
}

// GetUpcoming lists upcoming conferences. The upcoming filter is
// applied server-side.
func (c *Client) GetUpcoming(ctx context.Context) ([]Conference, error) {
	var confs []Conference
	if err := c.api.Do(ctx, http.MethodGet, "upcoming", nil, &confs); err != nil {
		return nil, wrapError(err)
	}
	return confs, nil
}
