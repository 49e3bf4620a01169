package app

import (
	"context"
	"fmt"
	"time"

	"github.com/parkgrid-hq/parkgrid-service-clients/internal/config"
	"github.com/parkgrid-hq/parkgrid-service-clients/internal/logger"
	"github.com/parkgrid-hq/parkgrid-service-clients/internal/probe"
	"github.com/parkgrid-hq/parkgrid-service-clients/internal/storage"
	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/notify"
	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/services"
)

// Monitor is the svcprobe runtime. It wires the service client set,
// the status store, and the notifier fanout, and drives the probe loop.
type Monitor struct {
	cfg           *config.Config
	set           *services.Set
	fanout        *notify.Fanout
	probeService  *probe.Service
	probeInterval time.Duration
	log           logger.Logger
	store         storage.Store
}

// NewMonitor builds the monitor runtime from config.
func NewMonitor(ctx context.Context, cfg *config.Config, log logger.Logger) (*Monitor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	set, err := services.NewSet(services.SetConfig{
		AdminManagementURL:  cfg.AdminManagementURL,
		AlertEventsURL:      cfg.AlertEventsURL,
		DeviceCommandURL:    cfg.DeviceCommandURL,
		DeviceOnboardingURL: cfg.DeviceOnboardingURL,
		DeviceTelemetryURL:  cfg.DeviceTelemetryURL,
		HealthMonitoringURL: cfg.HealthMonitoringURL,
		NotificationURL:     cfg.NotificationURL,
		ParkingSlotURL:      cfg.ParkingSlotURL,
		UserAuthURL:         cfg.UserAuthURL,
	}, services.WithTimeout(cfg.RequestTimeout), services.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("build service clients: %w", err)
	}

	checkers := set.HealthCheckers()
	serviceSummaries := make([]map[string]string, 0, len(checkers))
	for _, hc := range checkers {
		serviceSummaries = append(serviceSummaries, map[string]string{
			"service":  hc.Name(),
			"base_url": hc.BaseURL(),
		})
	}
	log.InfoObj("service clients built", "services_meta", map[string]any{
		"count":    len(serviceSummaries),
		"services": serviceSummaries,
	})

	notifierReg, err := notify.LoadRegistry(cfg.NotifiersFile)
	if err != nil {
		return nil, fmt.Errorf("load notifiers registry: %w", err)
	}

	enabledNotifiers := notifierReg.Enabled()
	if len(enabledNotifiers) == 0 {
		return nil, fmt.Errorf("no notifiers configured")
	}

	registry := notify.DefaultRegistry()
	notifiers, err := notify.BuildAll(ctx, registry, enabledNotifiers, log)
	if err != nil {
		return nil, fmt.Errorf("build notifiers: %w", err)
	}
	fanout := notify.NewFanout(notifiers)
	notifierSummaries := make([]map[string]string, 0, len(enabledNotifiers))
	for _, nCfg := range enabledNotifiers {
		notifierSummaries = append(notifierSummaries, map[string]string{
			"id":   nCfg.ID,
			"type": nCfg.Type,
		})
	}
	log.InfoObj("notifiers registry loaded", "notifiers_meta", map[string]any{
		"count":     len(notifierSummaries),
		"notifiers": notifierSummaries,
	})

	storeOpts := storage.Options{
		HistoryTTL:      cfg.HistoryTTL,
		CleanupInterval: cfg.HistoryCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"history_ttl_seconds":      int(cfg.HistoryTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.HistoryCleanupInterval.Seconds()),
	})

	probeService := probe.NewService(checkers, fanout, store, cfg.RequestTimeout, log)

	return &Monitor{
		cfg:           cfg,
		set:           set,
		fanout:        fanout,
		probeService:  probeService,
		probeInterval: cfg.ProbeInterval,
		log:           log,
		store:         store,
	}, nil
}

// Run starts the probe loop until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	if m == nil || m.probeService == nil {
		return fmt.Errorf("monitor is not initialized")
	}
	defer m.closeStore()

	m.log.InfoObj("probe loop starting", "monitor_state", map[string]any{
		"services_count":  len(m.set.HealthCheckers()),
		"notifiers_count": m.fanout.Size(),
		"probe_interval":  m.probeInterval.String(),
	})

	if err := m.runOnce(ctx); err != nil {
		m.log.ErrorObj("initial probe sweep failed", "error", err)
	}

	ticker := time.NewTicker(m.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.InfoObj("probe loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := m.runOnce(ctx); err != nil {
				m.log.ErrorObj("scheduled probe sweep failed", "error", err)
			}
		}
	}
}

// runOnce performs a single sweep across all services.
func (m *Monitor) runOnce(ctx context.Context) error {
	start := time.Now()
	if err := m.probeService.Run(ctx); err != nil {
		return err
	}
	m.log.InfoObj("probe sweep completed", "sweep_meta", map[string]any{
		"services_count": len(m.set.HealthCheckers()),
		"elapsed_ms":     time.Since(start).Milliseconds(),
	})
	return nil
}

// closeStore safely closes the storage backend, logging any errors encountered.
func (m *Monitor) closeStore() {
	if m == nil || m.store == nil {
		return
	}
	if err := m.store.Close(); err != nil {
		m.log.ErrorObj("storage close failed", "error", err)
	}
}
