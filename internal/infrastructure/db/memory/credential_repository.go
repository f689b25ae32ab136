package memory

import (
	"context"
	"sync"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

// CredentialRepository is the fixture-backed credential table. Lookups are
// exact and case-sensitive; this is demo data standing in for a real
// identity store.
type CredentialRepository struct {
	mu    sync.RWMutex
	creds []domain.Credential
}

// NewCredentialRepository seeds the table with the given records.
func NewCredentialRepository(seed []domain.Credential) *CredentialRepository {
	creds := make([]domain.Credential, len(seed))
	copy(creds, seed)
	return &CredentialRepository{creds: creds}
}

func (r *CredentialRepository) FindByEmail(_ context.Context, email string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.creds {
		if r.creds[i].Email == email {
			c := r.creds[i]
			return &c, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *CredentialRepository) Insert(_ context.Context, cred *domain.Credential) (*domain.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.creds {
		if r.creds[i].Email == cred.Email {
			return nil, domain.ErrDuplicateAccount
		}
	}
	r.creds = append(r.creds, *cred)
	c := *cred
	return &c, nil
}

func (r *CredentialRepository) UpdateProfileByID(_ context.Context, id string, update domain.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.creds {
		if r.creds[i].ID == id {
			update.Apply(&r.creds[i].User)
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

func (r *CredentialRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.creds), nil
}
