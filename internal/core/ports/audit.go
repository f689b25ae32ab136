package ports

import (
	"context"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

// AuditRepository persists session events for the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.SessionEvent) error
}

// EventPublisher pushes session events to an external broker. Publishing is
// best-effort; failures must never block the auth path.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.SessionEvent) error
}

// SessionEventRecorder is the processing side of the audit pipeline.
type SessionEventRecorder interface {
	Record(ctx context.Context, event domain.SessionEvent) error
}

// EventSink accepts session events for asynchronous processing. A nil sink
// is valid and drops events.
type EventSink interface {
	Enqueue(event domain.SessionEvent)
}
