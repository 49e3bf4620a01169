package notify

import (
	"context"

	"github.com/parkgrid-hq/parkgrid-service-clients/internal/domain"
)

// logNotifier writes status events to the structured log only.
type logNotifier struct {
	id  string
	log Logger
}

func newLogNotifier(_ context.Context, cfg NotifierConfig, log Logger) (Notifier, error) {
	return &logNotifier{id: cfg.ID, log: ensureLogger(log)}, nil
}

func (l *logNotifier) ID() string   { return l.id }
func (l *logNotifier) Type() string { return TypeLog }

func (l *logNotifier) Notify(_ context.Context, evt Event) error {
	if evt.State == domain.StateDown {
		l.log.WarnObj("service state changed", "status_event", evt)
		return nil
	}
	l.log.InfoObj("service state changed", "status_event", evt)
	return nil
}
