package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "parkgrid-svcprobe" {
		t.Fatalf("app name = %s", cfg.AppName)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("request timeout = %s", cfg.RequestTimeout)
	}
	if cfg.ProbeInterval != 60*time.Second {
		t.Fatalf("probe interval = %s", cfg.ProbeInterval)
	}
	if cfg.StorageType != "bbolt" {
		t.Fatalf("storage type = %s", cfg.StorageType)
	}
	if cfg.DeviceOnboardingURL != "" {
		t.Fatalf("device onboarding url default should be empty, got %s", cfg.DeviceOnboardingURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DEVICE_ONBOARDING_SERVICE_URL", "http://devices.internal")
	t.Setenv("PROBE_INTERVAL", "15")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DeviceOnboardingURL != "http://devices.internal" {
		t.Fatalf("device onboarding url = %s", cfg.DeviceOnboardingURL)
	}
	if cfg.ProbeInterval != 15*time.Second {
		t.Fatalf("probe interval = %s", cfg.ProbeInterval)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %s", cfg.LogLevel)
	}
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("PROBE_INTERVAL", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero probe interval")
	}
}
