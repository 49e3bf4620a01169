package services

import (
	"context"
	"fmt"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

const (
	deviceTelemetryName       = "device-telemetry"
	deviceTelemetryEnvVar     = "DEVICE_TELEMETRY_SERVICE_URL"
	deviceTelemetryDefaultURL = "http://device-telemetry-service:8000"
)

// DeviceTelemetryClient talks to the device telemetry service.
type DeviceTelemetryClient struct {
	c *svcclient.Client
}

// NewDeviceTelemetry builds a client for the device telemetry service.
func NewDeviceTelemetry(opts ...Option) (*DeviceTelemetryClient, error) {
	c, err := newServiceClient(deviceTelemetryEnvVar, deviceTelemetryDefaultURL, opts)
	if err != nil {
		return nil, err
	}
	return &DeviceTelemetryClient{c: c}, nil
}

func (d *DeviceTelemetryClient) Name() string    { return deviceTelemetryName }
func (d *DeviceTelemetryClient) BaseURL() string { return d.c.BaseURL() }

// GetLatest fetches the most recent telemetry reading for a device.
func (d *DeviceTelemetryClient) GetLatest(ctx context.Context, deviceID string) (*svcclient.Response, error) {
	return d.c.Get(ctx, fmt.Sprintf("/latest/%s", deviceID))
}

// GetDeviceStatus fetches the current status of a device.
func (d *DeviceTelemetryClient) GetDeviceStatus(ctx context.Context, deviceID string) (*svcclient.Response, error) {
	return d.c.Get(ctx, fmt.Sprintf("/device/status/%s", deviceID))
}

// HealthCheck probes the service health endpoint.
func (d *DeviceTelemetryClient) HealthCheck(ctx context.Context) (*svcclient.Response, error) {
	return d.c.Get(ctx, "/health")
}
