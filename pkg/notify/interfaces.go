package notify

import "context"

// Notifier sends status events to a downstream sink (SQS, SNS,
// Pub/Sub, webhook, log).
type Notifier interface {
	ID() string
	Type() string
	Notify(ctx context.Context, evt Event) error
}
