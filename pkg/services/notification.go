package services

import (
	"context"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

const (
	notificationName       = "notification"
	notificationEnvVar     = "NOTIFICATION_SERVICE_URL"
	notificationDefaultURL = "http://notification-service:8000"
)

// NotificationClient talks to the notification service.
type NotificationClient struct {
	c *svcclient.Client
}

// NewNotification builds a client for the notification service.
func NewNotification(opts ...Option) (*NotificationClient, error) {
	c, err := newServiceClient(notificationEnvVar, notificationDefaultURL, opts)
	if err != nil {
		return nil, err
	}
	return &NotificationClient{c: c}, nil
}

func (n *NotificationClient) Name() string    { return notificationName }
func (n *NotificationClient) BaseURL() string { return n.c.BaseURL() }

// Root fetches the service root endpoint.
func (n *NotificationClient) Root(ctx context.Context) (*svcclient.Response, error) {
	return n.c.Get(ctx, "/")
}

// HealthCheck probes the service health endpoint.
func (n *NotificationClient) HealthCheck(ctx context.Context) (*svcclient.Response, error) {
	return n.c.Get(ctx, "/health")
}
