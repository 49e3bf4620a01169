package services

import (
	"context"
	"fmt"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

const (
	parkingSlotName       = "parking-slot"
	parkingSlotEnvVar     = "PARKING_SLOT_SERVICE_URL"
	parkingSlotDefaultURL = "http://parking-slot-service:8000"
)

// ParkingSlotClient talks to the parking slot service. Mutating
// operations carry the caller's token in an authorization envelope.
type ParkingSlotClient struct {
	c *svcclient.Client
}

// NewParkingSlot builds a client for the parking slot service.
func NewParkingSlot(opts ...Option) (*ParkingSlotClient, error) {
	c, err := newServiceClient(parkingSlotEnvVar, parkingSlotDefaultURL, opts)
	if err != nil {
		return nil, err
	}
	return &ParkingSlotClient{c: c}, nil
}

func (p *ParkingSlotClient) Name() string    { return parkingSlotName }
func (p *ParkingSlotClient) BaseURL() string { return p.c.BaseURL() }

// CreateParkingSlot creates a parking slot.
func (p *ParkingSlotClient) CreateParkingSlot(ctx context.Context, slot any, token string) (*svcclient.Response, error) {
	body := map[string]any{
		"payload":       slot,
		"authorization": tokenBody(token),
	}
	return p.c.Post(ctx, "/parking_slots", svcclient.WithJSON(body))
}

// ListParkingSlots lists parking slots, optionally filtered by status.
func (p *ParkingSlotClient) ListParkingSlots(ctx context.Context, status string) (*svcclient.Response, error) {
	var opts []svcclient.RequestOption
	if status != "" {
		opts = append(opts, svcclient.WithQuery(map[string]string{"status": status}))
	}
	return p.c.Get(ctx, "/parking_slots", opts...)
}

// GetParkingSlot fetches a single parking slot.
func (p *ParkingSlotClient) GetParkingSlot(ctx context.Context, slotID string) (*svcclient.Response, error) {
	return p.c.Get(ctx, fmt.Sprintf("/parking_slots/%s", slotID))
}

// UpdateParkingSlot applies updates to a parking slot.
func (p *ParkingSlotClient) UpdateParkingSlot(ctx context.Context, slotID string, updates any, token string) (*svcclient.Response, error) {
	body := map[string]any{
		"payload":       updates,
		"authorization": tokenBody(token),
	}
	return p.c.Put(ctx, fmt.Sprintf("/parking_slots/%s", slotID), svcclient.WithJSON(body))
}

// DeleteParkingSlot removes a parking slot.
func (p *ParkingSlotClient) DeleteParkingSlot(ctx context.Context, slotID, token string) (*svcclient.Response, error) {
	body := map[string]any{
		"authorization": tokenBody(token),
	}
	return p.c.Delete(ctx, fmt.Sprintf("/parking_slots/%s", slotID), svcclient.WithJSON(body))
}

// AssignParkingSlot assigns a parking slot to a vehicle or user.
func (p *ParkingSlotClient) AssignParkingSlot(ctx context.Context, slotID string, assignment any, token string) (*svcclient.Response, error) {
	body := map[string]any{
		"body":          assignment,
		"authorization": tokenBody(token),
	}
	return p.c.Post(ctx, fmt.Sprintf("/parking_slots/%s/assign", slotID), svcclient.WithJSON(body))
}

// ReleaseParkingSlot releases a previously assigned parking slot.
func (p *ParkingSlotClient) ReleaseParkingSlot(ctx context.Context, slotID, token string) (*svcclient.Response, error) {
	body := map[string]any{
		"authorization": tokenBody(token),
	}
	return p.c.Post(ctx, fmt.Sprintf("/parking_slots/%s/release", slotID), svcclient.WithJSON(body))
}

// HealthCheck probes the service health endpoint.
func (p *ParkingSlotClient) HealthCheck(ctx context.Context) (*svcclient.Response, error) {
	return p.c.Get(ctx, "/health")
}
