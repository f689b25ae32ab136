package memory

import (
	"context"
	"sync"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

const defaultAuditCapacity = 256

// AuditRepository keeps the most recent session events in a bounded
// in-process ring.
type AuditRepository struct {
	mu       sync.Mutex
	events   []domain.SessionEvent
	capacity int
}

func NewAuditRepository(capacity int) *AuditRepository {
	if capacity <= 0 {
		capacity = defaultAuditCapacity
	}
	return &AuditRepository{capacity: capacity}
}

func (r *AuditRepository) Insert(_ context.Context, event *domain.SessionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	if len(r.events) > r.capacity {
		r.events = r.events[len(r.events)-r.capacity:]
	}
	return nil
}

// Recent returns up to n most recent events, newest last.
func (r *AuditRepository) Recent(n int) []domain.SessionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= 0 || n > len(r.events) {
		n = len(r.events)
	}
	out := make([]domain.SessionEvent, n)
	copy(out, r.events[len(r.events)-n:])
	return out
}
