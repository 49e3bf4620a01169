package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parkgrid-hq/parkgrid-service-clients/internal/domain"
	"github.com/parkgrid-hq/parkgrid-service-clients/internal/logger"
	"github.com/parkgrid-hq/parkgrid-service-clients/internal/storage"
	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/notify"
	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/services"
)

// EventNotifier dispatches status-change events downstream.
type EventNotifier interface {
	Notify(ctx context.Context, evt notify.Event) (int, error)
}

// Service sweeps the platform services, records outcomes, and raises
// events on state transitions.
type Service struct {
	checkers []services.HealthChecker
	notifier EventNotifier
	store    storage.Store
	timeout  time.Duration
	log      logger.Logger
}

// NewService wires a probe over the given health checkers.
func NewService(checkers []services.HealthChecker, notifier EventNotifier, store storage.Store, timeout time.Duration, log logger.Logger) *Service {
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &Service{
		checkers: checkers,
		notifier: notifier,
		store:    store,
		timeout:  timeout,
		log:      log,
	}
}

// Run executes one sweep over all services.
func (s *Service) Run(ctx context.Context) error {
	if s == nil || len(s.checkers) == 0 {
		return fmt.Errorf("probe service is not initialized")
	}

	var errs []error
	for _, checker := range s.checkers {
		if err := s.probeOne(ctx, checker); err != nil {
			errs = append(errs, err)
			s.log.ErrorObj("service probe failed", "probe_error", map[string]any{
				"service": checker.Name(),
				"error":   err.Error(),
			})
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// probeOne checks a single service and handles recording/notification.
// Only storage and notifier failures count as probe errors; an
// unreachable service is a legitimate "down" observation.
func (s *Service) probeOne(ctx context.Context, checker services.HealthChecker) error {
	status := s.observe(ctx, checker)

	prevState := ""
	if s.store != nil {
		prev, found, err := s.store.LastStatus(checker.Name())
		if err != nil {
			return fmt.Errorf("read last status for %s: %w", checker.Name(), err)
		}
		if found {
			prevState = prev.State
		}
		if err := s.store.RecordStatus(status); err != nil {
			return fmt.Errorf("record status for %s: %w", checker.Name(), err)
		}
	}

	s.log.DebugObj("service probed", "probe_result", map[string]any{
		"service": status.Service,
		"state":   status.State,
		"status":  status.StatusCode,
	})

	if status.State == prevState {
		return nil
	}

	if s.notifier != nil {
		if _, err := s.notifier.Notify(ctx, notify.NewEvent(prevState, status)); err != nil {
			return fmt.Errorf("notify transition for %s: %w", checker.Name(), err)
		}
	}
	return nil
}

// observe calls the service health endpoint and maps the outcome.
func (s *Service) observe(ctx context.Context, checker services.HealthChecker) domain.ServiceStatus {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	status := domain.ServiceStatus{
		Service:   checker.Name(),
		BaseURL:   checker.BaseURL(),
		CheckedAt: time.Now().UTC(),
	}

	resp, err := checker.HealthCheck(ctx)
	switch {
	case err != nil:
		status.State = domain.StateDown
		status.Error = err.Error()
	case !resp.IsSuccess():
		status.State = domain.StateDown
		status.StatusCode = resp.StatusCode()
	default:
		status.State = domain.StateUp
		status.StatusCode = resp.StatusCode()
	}
	return status
}
