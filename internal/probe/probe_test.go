package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/parkgrid-hq/parkgrid-service-clients/internal/domain"
	"github.com/parkgrid-hq/parkgrid-service-clients/internal/storage"
	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/notify"
	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/services"
)

type captureNotifier struct {
	events []notify.Event
}

func (c *captureNotifier) Notify(_ context.Context, evt notify.Event) (int, error) {
	c.events = append(c.events, evt)
	return 1, nil
}

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewStore("bbolt", t.TempDir()+"/status.db", storage.Options{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestProbeNotifiesOnFirstObservationAndTransitions(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if healthy.Load() {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := services.NewNotification(services.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewNotification: %v", err)
	}

	notifier := &captureNotifier{}
	store := newTestStore(t)
	svc := NewService([]services.HealthChecker{client}, notifier, store, time.Second, nil)

	// First observation: no previous state, counts as a transition.
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("events after first sweep = %d", len(notifier.events))
	}
	if notifier.events[0].State != domain.StateUp || notifier.events[0].PrevState != "" {
		t.Fatalf("first event = %+v", notifier.events[0])
	}

	// Same state again: no new event.
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("steady state should not notify, events = %d", len(notifier.events))
	}

	// Service degrades: up -> down transition.
	healthy.Store(false)
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(notifier.events) != 2 {
		t.Fatalf("events after degradation = %d", len(notifier.events))
	}
	evt := notifier.events[1]
	if evt.State != domain.StateDown || evt.PrevState != domain.StateUp {
		t.Fatalf("transition event = %+v", evt)
	}
	if evt.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status code = %d", evt.StatusCode)
	}
}

func TestProbeMarksUnreachableServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	client, err := services.NewNotification(services.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewNotification: %v", err)
	}

	notifier := &captureNotifier{}
	store := newTestStore(t)
	svc := NewService([]services.HealthChecker{client}, notifier, store, time.Second, nil)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run should not fail on an unreachable service: %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("events = %d", len(notifier.events))
	}
	evt := notifier.events[0]
	if evt.State != domain.StateDown || evt.Error == "" {
		t.Fatalf("event = %+v", evt)
	}

	last, found, err := store.LastStatus(client.Name())
	if err != nil || !found {
		t.Fatalf("LastStatus: found=%v err=%v", found, err)
	}
	if last.State != domain.StateDown {
		t.Fatalf("stored state = %s", last.State)
	}
}

func TestProbeWorksWithoutStoreAndNotifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := services.NewNotification(services.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewNotification: %v", err)
	}

	svc := NewService([]services.HealthChecker{client}, nil, nil, time.Second, nil)
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
