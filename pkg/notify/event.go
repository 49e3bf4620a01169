package notify

import (
	"time"

	"github.com/parkgrid-hq/parkgrid-service-clients/internal/domain"
)

// Event is the payload delivered to notifier sinks when a service
// changes state.
type Event struct {
	Service    string    `json:"service"`
	BaseURL    string    `json:"base_url"`
	State      string    `json:"state"`
	PrevState  string    `json:"previous_state,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// NewEvent builds an Event for a status observation, carrying the
// previously known state (empty for first observations).
func NewEvent(prevState string, status domain.ServiceStatus) Event {
	checkedAt := status.CheckedAt
	if checkedAt.IsZero() {
		checkedAt = time.Now().UTC()
	}
	return Event{
		Service:    status.Service,
		BaseURL:    status.BaseURL,
		State:      status.State,
		PrevState:  prevState,
		StatusCode: status.StatusCode,
		Error:      status.Error,
		CheckedAt:  checkedAt,
	}
}
