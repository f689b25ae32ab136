package memory

import (
	"context"
	"strconv"
	"testing"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

func TestAuditRepository_InsertAndRecent(t *testing.T) {
	repo := NewAuditRepository(10)

	for i := 0; i < 3; i++ {
		err := repo.Insert(context.Background(), &domain.SessionEvent{
			Type:  domain.EventLogin,
			Email: "u" + strconv.Itoa(i) + "@x.com",
		})
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	events := repo.Recent(2)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].Email != "u2@x.com" {
		t.Fatalf("expected newest last, got %+v", events)
	}

	if all := repo.Recent(0); len(all) != 3 {
		t.Fatalf("Recent(0) must return everything, got %d", len(all))
	}
}

func TestAuditRepository_BoundedCapacity(t *testing.T) {
	repo := NewAuditRepository(2)

	for i := 0; i < 5; i++ {
		_ = repo.Insert(context.Background(), &domain.SessionEvent{Timestamp: int64(i)})
	}

	events := repo.Recent(0)
	if len(events) != 2 {
		t.Fatalf("expected ring bounded at 2, got %d", len(events))
	}
	if events[0].Timestamp != 3 || events[1].Timestamp != 4 {
		t.Fatalf("expected the two newest events, got %+v", events)
	}
}
