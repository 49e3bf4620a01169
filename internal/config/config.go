package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the probe daemon configuration loaded from files and
// environment variables. Service URL keys match the env vars the rest
// of the platform already exports (ADMIN_MANAGEMENT_SERVICE_URL, ...).
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
	ProbeIntervalSeconds  int64         `mapstructure:"probe_interval"`
	ProbeInterval         time.Duration `mapstructure:"-"`

	NotifiersFile string `mapstructure:"notifiers_file"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	HistoryTTLSeconds      int64         `mapstructure:"history_ttl_seconds"`
	HistoryCleanupSeconds  int64         `mapstructure:"history_cleanup_interval_seconds"`
	HistoryTTL             time.Duration `mapstructure:"-"`
	HistoryCleanupInterval time.Duration `mapstructure:"-"`

	AdminManagementURL  string `mapstructure:"admin_management_service_url"`
	AlertEventsURL      string `mapstructure:"alert_event_processing_service_url"`
	DeviceCommandURL    string `mapstructure:"device_command_service_url"`
	DeviceOnboardingURL string `mapstructure:"device_onboarding_service_url"`
	DeviceTelemetryURL  string `mapstructure:"device_telemetry_service_url"`
	HealthMonitoringURL string `mapstructure:"health_monitoring_service_url"`
	NotificationURL     string `mapstructure:"notification_service_url"`
	ParkingSlotURL      string `mapstructure:"parking_slot_service_url"`
	UserAuthURL         string `mapstructure:"user_auth_service_url"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "parkgrid-svcprobe")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout_seconds", 30)
	v.SetDefault("probe_interval", 60) // seconds
	v.SetDefault("notifiers_file", "./configs/notifiers.yaml")
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/status.db")
	v.SetDefault("history_ttl_seconds", int64((7*24*time.Hour)/time.Second))
	v.SetDefault("history_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.SetDefault("admin_management_service_url", "")
	v.SetDefault("alert_event_processing_service_url", "")
	v.SetDefault("device_command_service_url", "")
	v.SetDefault("device_onboarding_service_url", "")
	v.SetDefault("device_telemetry_service_url", "")
	v.SetDefault("health_monitoring_service_url", "")
	v.SetDefault("notification_service_url", "")
	v.SetDefault("parking_slot_service_url", "")
	v.SetDefault("user_auth_service_url", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	if cfg.ProbeIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid probe_interval (must be positive seconds)")
	}
	cfg.ProbeInterval = time.Duration(cfg.ProbeIntervalSeconds) * time.Second

	if cfg.HistoryTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid history_ttl_seconds (must be positive seconds)")
	}
	if cfg.HistoryCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid history_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.HistoryTTL = time.Duration(cfg.HistoryTTLSeconds) * time.Second
	cfg.HistoryCleanupInterval = time.Duration(cfg.HistoryCleanupSeconds) * time.Second

	return &cfg, nil
}
