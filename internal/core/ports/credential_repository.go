package ports

import (
	"context"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

// CredentialRepository is the persistence contract for account records.
// The identity backend owns credentials exclusively; nothing above it may
// see a password hash.
type CredentialRepository interface {
	// FindByEmail performs an exact, case-sensitive lookup.
	// Returns domain.ErrAccountNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)

	// Insert appends a new record. Returns domain.ErrDuplicateAccount when
	// the email is already registered.
	Insert(ctx context.Context, cred *domain.Credential) (*domain.Credential, error)

	// UpdateProfileByID merges the partial update into the record with the
	// given id. A missing record is not an error; the persisted session is
	// the authoritative projection for the caller.
	UpdateProfileByID(ctx context.Context, id string, update domain.ProfileUpdate) error

	// Count reports the number of stored records, used for monotonic id
	// assignment (same-process, sequential calls only).
	Count(ctx context.Context) (int, error)
}
