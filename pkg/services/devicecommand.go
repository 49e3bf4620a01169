package services

import (
	"context"
	"fmt"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

const (
	deviceCommandName       = "device-command"
	deviceCommandEnvVar     = "DEVICE_COMMAND_SERVICE_URL"
	deviceCommandDefaultURL = "http://device-command-service:8000"
)

// DeviceCommandClient talks to the device command service.
type DeviceCommandClient struct {
	c *svcclient.Client
}

// NewDeviceCommand builds a client for the device command service.
func NewDeviceCommand(opts ...Option) (*DeviceCommandClient, error) {
	c, err := newServiceClient(deviceCommandEnvVar, deviceCommandDefaultURL, opts)
	if err != nil {
		return nil, err
	}
	return &DeviceCommandClient{c: c}, nil
}

func (d *DeviceCommandClient) Name() string    { return deviceCommandName }
func (d *DeviceCommandClient) BaseURL() string { return d.c.BaseURL() }

// AddCommand queues a command for a device.
func (d *DeviceCommandClient) AddCommand(ctx context.Context, command any) (*svcclient.Response, error) {
	return d.c.Post(ctx, "/add_command", svcclient.WithJSON(command))
}

// GetCommands lists pending commands for a device.
func (d *DeviceCommandClient) GetCommands(ctx context.Context, deviceID string) (*svcclient.Response, error) {
	return d.c.Get(ctx, fmt.Sprintf("/commands/%s", deviceID))
}

// DeleteCommands removes all pending commands for a device.
func (d *DeviceCommandClient) DeleteCommands(ctx context.Context, deviceID string) (*svcclient.Response, error) {
	return d.c.Delete(ctx, fmt.Sprintf("/commands/delete/%s", deviceID))
}

// HealthCheck probes the service health endpoint.
func (d *DeviceCommandClient) HealthCheck(ctx context.Context) (*svcclient.Response, error) {
	return d.c.Get(ctx, "/health")
}
