// Package services provides one typed client per internal microservice.
// Each client owns a shared svcclient.Client (composition) and maps its
// methods 1:1 to the service's REST endpoints. Responses pass through
// untouched; callers parse bodies and judge non-2xx statuses themselves.
package services

import (
	"context"
	"os"
	"time"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

// HealthChecker is the surface health probes rely on. Every service
// client in this package implements it.
type HealthChecker interface {
	Name() string
	BaseURL() string
	HealthCheck(ctx context.Context) (*svcclient.Response, error)
}

// Option configures a service client at construction time.
type Option func(*options)

type options struct {
	baseURL string
	timeout time.Duration
	log     svcclient.Logger
}

// WithBaseURL overrides the service endpoint, taking precedence over
// the environment variable and the compiled-in default.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger attaches a logger to the underlying client.
func WithLogger(log svcclient.Logger) Option {
	return func(o *options) { o.log = log }
}

// newServiceClient resolves the base URL (explicit option, then env
// var, then default) and builds the underlying wrapper.
func newServiceClient(envVar, defaultURL string, opts []Option) (*svcclient.Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	base := o.baseURL
	if base == "" {
		base = os.Getenv(envVar)
	}
	if base == "" {
		base = defaultURL
	}

	var clientOpts []svcclient.Option
	if o.timeout > 0 {
		clientOpts = append(clientOpts, svcclient.WithTimeout(o.timeout))
	}
	if o.log != nil {
		clientOpts = append(clientOpts, svcclient.WithLogger(o.log))
	}
	return svcclient.New(base, clientOpts...)
}

// tokenBody builds the {"token": ...} payload the platform services
// expect for authorized operations.
func tokenBody(token string) map[string]string {
	return map[string]string{"token": token}
}
