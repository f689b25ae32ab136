package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
	"github.com/smartgridlink/energy-trading-api/internal/core/ports"
)

type auditService struct {
	repo      ports.AuditRepository
	publisher ports.EventPublisher
	log       zerolog.Logger
}

// NewAuditService returns a SessionEventRecorder that persists session
// events and, when a publisher is configured, forwards them to the broker.
// publisher may be nil.
func NewAuditService(repo ports.AuditRepository, publisher ports.EventPublisher, log zerolog.Logger) ports.SessionEventRecorder {
	return &auditService{repo: repo, publisher: publisher, log: log}
}

// Record persists the event and publishes it best-effort. A broker failure
// is logged and ignored; the audit write is the source of truth.
func (s *auditService) Record(ctx context.Context, event domain.SessionEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.log.Warn().Err(err).Str("type", event.Type).Msg("event publish failed")
		}
	}

	s.log.Debug().
		Str("type", event.Type).
		Str("email", event.Email).
		Bool("success", event.Success).
		Msg("session event recorded")
	return nil
}
