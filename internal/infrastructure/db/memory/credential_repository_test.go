package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

func seed() []domain.Credential {
	return []domain.Credential{
		{User: domain.User{ID: "1", Email: "a@x.com", Role: domain.RoleAdmin}, PasswordHash: "h1"},
		{User: domain.User{ID: "2", Email: "b@x.com", Role: domain.RoleProducer}, PasswordHash: "h2"},
	}
}

func TestCredentialRepository_FindByEmail(t *testing.T) {
	repo := NewCredentialRepository(seed())

	cred, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if cred.ID != "1" || cred.PasswordHash != "h1" {
		t.Fatalf("unexpected record: %+v", cred)
	}

	if _, err := repo.FindByEmail(context.Background(), "A@x.com"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("lookup must be case-sensitive, got %v", err)
	}
}

func TestCredentialRepository_InsertDuplicate(t *testing.T) {
	repo := NewCredentialRepository(seed())

	dup := &domain.Credential{User: domain.User{ID: "3", Email: "a@x.com"}}
	if _, err := repo.Insert(context.Background(), dup); !errors.Is(err, domain.ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestCredentialRepository_InsertAndCount(t *testing.T) {
	repo := NewCredentialRepository(seed())

	cred := &domain.Credential{User: domain.User{ID: "3", Email: "c@x.com", Role: domain.RoleConsumer}}
	if _, err := repo.Insert(context.Background(), cred); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	n, err := repo.Count(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("expected count 3, got %d err=%v", n, err)
	}
}

func TestCredentialRepository_UpdateProfileByID(t *testing.T) {
	repo := NewCredentialRepository(seed())

	addr := "Updated Address"
	if err := repo.UpdateProfileByID(context.Background(), "2", domain.ProfileUpdate{Address: &addr}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	cred, err := repo.FindByEmail(context.Background(), "b@x.com")
	if err != nil {
		t.Fatalf("find after update failed: %v", err)
	}
	if cred.Address != "Updated Address" {
		t.Fatalf("update not applied: %+v", cred)
	}

	if err := repo.UpdateProfileByID(context.Background(), "99", domain.ProfileUpdate{Address: &addr}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestCredentialRepository_SeedIsolation(t *testing.T) {
	original := seed()
	repo := NewCredentialRepository(original)

	cred := &domain.Credential{User: domain.User{ID: "3", Email: "c@x.com"}}
	if _, err := repo.Insert(context.Background(), cred); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if len(original) != 2 {
		t.Fatalf("repository must copy the seed slice, caller's slice grew to %d", len(original))
	}
}
