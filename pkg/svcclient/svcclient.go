package svcclient

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// Client issues HTTP requests against a single service's base URL.
// The base URL is fixed at construction and never mutated; concurrent
// calls share only the underlying transport's connection pool.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *resty.Client
	log     Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a logger for request/response logging.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient injects a prepared resty client. The caller owns its
// configuration; WithTimeout is ignored for injected clients.
func WithHTTPClient(hc *resty.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New builds a Client for the given base URL. Trailing slashes are
// trimmed so endpoint joining is unambiguous.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}

	c := &Client{
		baseURL: baseURL,
		timeout: defaultTimeout,
		log:     noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = resty.New().SetTimeout(c.timeout)
	}
	return c, nil
}

// BaseURL returns the base URL the client was constructed with.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues a GET request against base URL + endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.execute(ctx, http.MethodGet, endpoint, opts...)
}

// Post issues a POST request against base URL + endpoint.
func (c *Client) Post(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.execute(ctx, http.MethodPost, endpoint, opts...)
}

// Put issues a PUT request against base URL + endpoint.
func (c *Client) Put(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.execute(ctx, http.MethodPut, endpoint, opts...)
}

// Patch issues a PATCH request against base URL + endpoint.
func (c *Client) Patch(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.execute(ctx, http.MethodPatch, endpoint, opts...)
}

// Delete issues a DELETE request against base URL + endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.execute(ctx, http.MethodDelete, endpoint, opts...)
}

// execute performs the request and wraps the transport response.
// Transport failures are returned to the caller untouched; non-2xx
// statuses are ordinary responses, never errors.
func (c *Client) execute(ctx context.Context, method, endpoint string, opts ...RequestOption) (*Response, error) {
	url := c.baseURL + normalizeEndpoint(endpoint)

	req := c.http.R().SetContext(ctx)
	for _, opt := range opts {
		opt(req)
	}

	c.log.InfoObj("service request", "http_request", map[string]any{
		"method": method,
		"url":    url,
	})

	resp, err := req.Execute(method, url)
	if err != nil {
		c.log.WarnObj("service request failed", "http_request_error", map[string]any{
			"method": method,
			"url":    url,
			"error":  err.Error(),
		})
		return nil, err
	}

	c.log.DebugObj("service response", "http_response", map[string]any{
		"method": method,
		"url":    url,
		"status": resp.StatusCode(),
	})

	return &Response{
		status: resp.StatusCode(),
		header: resp.Header(),
		body:   resp.Body(),
	}, nil
}

// normalizeEndpoint ensures the endpoint carries exactly one leading slash.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "/"
	}
	if !strings.HasPrefix(endpoint, "/") {
		return "/" + endpoint
	}
	return endpoint
}
