package services

import "fmt"

// SetConfig carries per-service base URL overrides. Empty fields fall
// back to the environment variable and then the compiled-in default.
type SetConfig struct {
	AdminManagementURL  string
	AlertEventsURL      string
	DeviceCommandURL    string
	DeviceOnboardingURL string
	DeviceTelemetryURL  string
	HealthMonitoringURL string
	NotificationURL     string
	ParkingSlotURL      string
	UserAuthURL         string
}

// Set bundles one client per platform service. Callers construct a Set
// explicitly and inject it; there are no package-level instances.
type Set struct {
	AdminManagement  *AdminManagementClient
	AlertEvents      *AlertEventsClient
	DeviceCommand    *DeviceCommandClient
	DeviceOnboarding *DeviceOnboardingClient
	DeviceTelemetry  *DeviceTelemetryClient
	HealthMonitoring *HealthMonitoringClient
	Notification     *NotificationClient
	ParkingSlot      *ParkingSlotClient
	UserAuth         *UserAuthClient
}

// NewSet builds clients for all platform services. Shared options
// (timeout, logger) apply to every client; per-service URLs come from
// cfg.
func NewSet(cfg SetConfig, shared ...Option) (*Set, error) {
	withURL := func(u string) []Option {
		opts := make([]Option, 0, len(shared)+1)
		opts = append(opts, shared...)
		if u != "" {
			opts = append(opts, WithBaseURL(u))
		}
		return opts
	}

	var (
		s   Set
		err error
	)
	if s.AdminManagement, err = NewAdminManagement(withURL(cfg.AdminManagementURL)...); err != nil {
		return nil, fmt.Errorf("admin management client: %w", err)
	}
	if s.AlertEvents, err = NewAlertEvents(withURL(cfg.AlertEventsURL)...); err != nil {
		return nil, fmt.Errorf("alert events client: %w", err)
	}
	if s.DeviceCommand, err = NewDeviceCommand(withURL(cfg.DeviceCommandURL)...); err != nil {
		return nil, fmt.Errorf("device command client: %w", err)
	}
	if s.DeviceOnboarding, err = NewDeviceOnboarding(withURL(cfg.DeviceOnboardingURL)...); err != nil {
		return nil, fmt.Errorf("device onboarding client: %w", err)
	}
	if s.DeviceTelemetry, err = NewDeviceTelemetry(withURL(cfg.DeviceTelemetryURL)...); err != nil {
		return nil, fmt.Errorf("device telemetry client: %w", err)
	}
	if s.HealthMonitoring, err = NewHealthMonitoring(withURL(cfg.HealthMonitoringURL)...); err != nil {
		return nil, fmt.Errorf("health monitoring client: %w", err)
	}
	if s.Notification, err = NewNotification(withURL(cfg.NotificationURL)...); err != nil {
		return nil, fmt.Errorf("notification client: %w", err)
	}
	if s.ParkingSlot, err = NewParkingSlot(withURL(cfg.ParkingSlotURL)...); err != nil {
		return nil, fmt.Errorf("parking slot client: %w", err)
	}
	if s.UserAuth, err = NewUserAuth(withURL(cfg.UserAuthURL)...); err != nil {
		return nil, fmt.Errorf("user auth client: %w", err)
	}
	return &s, nil
}

// HealthCheckers returns every client behind the HealthChecker surface,
// in a stable order.
func (s *Set) HealthCheckers() []HealthChecker {
	if s == nil {
		return nil
	}
	return []HealthChecker{
		s.AdminManagement,
		s.AlertEvents,
		s.DeviceCommand,
		s.DeviceOnboarding,
		s.DeviceTelemetry,
		s.HealthMonitoring,
		s.Notification,
		s.ParkingSlot,
		s.UserAuth,
	}
}
