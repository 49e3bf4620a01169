package domain

import "time"

// Domain contains core models shared by the probe, storage, and notifiers.

const (
	StateUp   = "up"
	StateDown = "down"
)

// ServiceStatus is one observed health outcome for a service.
type ServiceStatus struct {
	Service    string    `json:"service"`
	BaseURL    string    `json:"base_url"`
	State      string    `json:"state"`
	StatusCode int       `json:"status_code,omitempty"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// Healthy reports whether the status represents a reachable, 2xx service.
func (s ServiceStatus) Healthy() bool { return s.State == StateUp }
