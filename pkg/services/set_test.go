package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewSetBuildsAllClients(t *testing.T) {
	set, err := NewSet(SetConfig{})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	checkers := set.HealthCheckers()
	if len(checkers) != 9 {
		t.Fatalf("expected 9 health checkers, got %d", len(checkers))
	}
	seen := map[string]bool{}
	for _, hc := range checkers {
		if hc.Name() == "" || hc.BaseURL() == "" {
			t.Fatalf("checker %q has empty base url", hc.Name())
		}
		if seen[hc.Name()] {
			t.Fatalf("duplicate checker name %q", hc.Name())
		}
		seen[hc.Name()] = true
	}
}

func TestNewSetAppliesPerServiceURLs(t *testing.T) {
	set, err := NewSet(SetConfig{
		DeviceOnboardingURL: "http://devices.internal",
		ParkingSlotURL:      "http://slots.internal",
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	if got := set.DeviceOnboarding.BaseURL(); got != "http://devices.internal" {
		t.Fatalf("device onboarding base url = %s", got)
	}
	if got := set.ParkingSlot.BaseURL(); got != "http://slots.internal" {
		t.Fatalf("parking slot base url = %s", got)
	}
	if got := set.UserAuth.BaseURL(); got != userAuthDefaultURL {
		t.Fatalf("user auth base url = %s", got)
	}
}

func TestSetClientsAreIsolated(t *testing.T) {
	var hitsA, hitsB int
	srvA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hitsA++
	}))
	defer srvA.Close()
	srvB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hitsB++
	}))
	defer srvB.Close()

	setA, err := NewSet(SetConfig{DeviceOnboardingURL: srvA.URL})
	if err != nil {
		t.Fatalf("NewSet A: %v", err)
	}
	setB, err := NewSet(SetConfig{DeviceOnboardingURL: srvB.URL})
	if err != nil {
		t.Fatalf("NewSet B: %v", err)
	}

	if _, err := setA.DeviceOnboarding.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check A: %v", err)
	}
	if _, err := setB.DeviceOnboarding.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check B: %v", err)
	}
	if hitsA != 1 || hitsB != 1 {
		t.Fatalf("hits = %d/%d, clients leaked base URLs", hitsA, hitsB)
	}
}
