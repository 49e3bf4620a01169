package services

import (
	"context"
	"fmt"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

const (
	healthMonitoringName       = "health-monitoring"
	healthMonitoringEnvVar     = "HEALTH_MONITORING_SERVICE_URL"
	healthMonitoringDefaultURL = "http://health-monitoring-service:8000"
)

// HealthMonitoringClient talks to the device health monitoring service.
type HealthMonitoringClient struct {
	c *svcclient.Client
}

// NewHealthMonitoring builds a client for the health monitoring service.
func NewHealthMonitoring(opts ...Option) (*HealthMonitoringClient, error) {
	c, err := newServiceClient(healthMonitoringEnvVar, healthMonitoringDefaultURL, opts)
	if err != nil {
		return nil, err
	}
	return &HealthMonitoringClient{c: c}, nil
}

func (h *HealthMonitoringClient) Name() string    { return healthMonitoringName }
func (h *HealthMonitoringClient) BaseURL() string { return h.c.BaseURL() }

// GetLatestHealth fetches the latest health record for a device.
func (h *HealthMonitoringClient) GetLatestHealth(ctx context.Context, deviceID string) (*svcclient.Response, error) {
	return h.c.Get(ctx, fmt.Sprintf("/%s/latest", deviceID))
}

// HealthCheck probes the service health endpoint.
func (h *HealthMonitoringClient) HealthCheck(ctx context.Context) (*svcclient.Response, error) {
	return h.c.Get(ctx, "/health")
}
