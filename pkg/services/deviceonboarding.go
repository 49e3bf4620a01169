package services

import (
	"context"
	"fmt"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

const (
	deviceOnboardingName       = "device-onboarding"
	deviceOnboardingEnvVar     = "DEVICE_ONBOARDING_SERVICE_URL"
	deviceOnboardingDefaultURL = "http://device-onboarding-service:8000"
)

// DeviceOnboardingClient talks to the device onboarding service.
type DeviceOnboardingClient struct {
	c *svcclient.Client
}

// NewDeviceOnboarding builds a client for the device onboarding service.
func NewDeviceOnboarding(opts ...Option) (*DeviceOnboardingClient, error) {
	c, err := newServiceClient(deviceOnboardingEnvVar, deviceOnboardingDefaultURL, opts)
	if err != nil {
		return nil, err
	}
	return &DeviceOnboardingClient{c: c}, nil
}

func (d *DeviceOnboardingClient) Name() string    { return deviceOnboardingName }
func (d *DeviceOnboardingClient) BaseURL() string { return d.c.BaseURL() }

// AddNewDevice registers a device with the platform.
func (d *DeviceOnboardingClient) AddNewDevice(ctx context.Context, device any) (*svcclient.Response, error) {
	return d.c.Post(ctx, "/add_new_device", svcclient.WithJSON(device))
}

// GetMyDevices lists the devices owned by a user.
func (d *DeviceOnboardingClient) GetMyDevices(ctx context.Context, userID string) (*svcclient.Response, error) {
	return d.c.Get(ctx, fmt.Sprintf("/get_my_devices/%s", userID))
}

// GetUserIDByDeviceID resolves the owner of a device.
func (d *DeviceOnboardingClient) GetUserIDByDeviceID(ctx context.Context, deviceID string) (*svcclient.Response, error) {
	return d.c.Get(ctx, fmt.Sprintf("/get_user_id_by_device_id/%s", deviceID))
}

// HealthCheck probes the service health endpoint.
func (d *DeviceOnboardingClient) HealthCheck(ctx context.Context) (*svcclient.Response, error) {
	return d.c.Get(ctx, "/health")
}
