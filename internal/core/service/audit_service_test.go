package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

type stubAuditRepo struct {
	events []domain.SessionEvent
	err    error
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.SessionEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *event)
	return nil
}

type stubPublisher struct {
	published []domain.SessionEvent
	err       error
}

func (p *stubPublisher) Publish(_ context.Context, event domain.SessionEvent) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, event)
	return nil
}

func TestAuditService_RecordPersistsAndPublishes(t *testing.T) {
	repo := &stubAuditRepo{}
	pub := &stubPublisher{}
	svc := NewAuditService(repo, pub, zerolog.Nop())

	event := domain.SessionEvent{Type: domain.EventLogin, Email: "a@x.com", Success: true}
	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if len(repo.events) != 1 || len(pub.published) != 1 {
		t.Fatalf("expected persist and publish, got repo=%d pub=%d", len(repo.events), len(pub.published))
	}
}

func TestAuditService_PublishFailureIgnored(t *testing.T) {
	repo := &stubAuditRepo{}
	pub := &stubPublisher{err: errors.New("broker down")}
	svc := NewAuditService(repo, pub, zerolog.Nop())

	if err := svc.Record(context.Background(), domain.SessionEvent{Type: domain.EventLogout}); err != nil {
		t.Fatalf("broker failure must not fail the record, got %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("event not persisted")
	}
}

func TestAuditService_RepoFailurePropagates(t *testing.T) {
	repoErr := errors.New("disk full")
	svc := NewAuditService(&stubAuditRepo{err: repoErr}, nil, zerolog.Nop())

	if err := svc.Record(context.Background(), domain.SessionEvent{Type: domain.EventLogin}); !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestAuditService_NilPublisher(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, nil, zerolog.Nop())

	if err := svc.Record(context.Background(), domain.SessionEvent{Type: domain.EventSignup}); err != nil {
		t.Fatalf("record with nil publisher failed: %v", err)
	}
}
