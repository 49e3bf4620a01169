package services

import (
	"context"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

const (
	alertEventsName       = "alert-event-processing"
	alertEventsEnvVar     = "ALERT_EVENT_PROCESSING_SERVICE_URL"
	alertEventsDefaultURL = "http://alert-event-processing-service:8000"
)

// AlertEventsClient talks to the alert and event processing service.
type AlertEventsClient struct {
	c *svcclient.Client
}

// NewAlertEvents builds a client for the alert and event processing service.
func NewAlertEvents(opts ...Option) (*AlertEventsClient, error) {
	c, err := newServiceClient(alertEventsEnvVar, alertEventsDefaultURL, opts)
	if err != nil {
		return nil, err
	}
	return &AlertEventsClient{c: c}, nil
}

func (a *AlertEventsClient) Name() string    { return alertEventsName }
func (a *AlertEventsClient) BaseURL() string { return a.c.BaseURL() }

// Root fetches the service root endpoint.
func (a *AlertEventsClient) Root(ctx context.Context) (*svcclient.Response, error) {
	return a.c.Get(ctx, "/")
}

// HealthCheck probes the service health endpoint.
func (a *AlertEventsClient) HealthCheck(ctx context.Context) (*svcclient.Response, error) {
	return a.c.Get(ctx, "/health")
}
