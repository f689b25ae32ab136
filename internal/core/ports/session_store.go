package ports

import (
	"context"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

// SessionStore holds the process-wide session state and serializes every
// mutating operation against it.
type SessionStore interface {
	// Initialize hydrates the session from persisted state. Called once at
	// process start.
	Initialize(ctx context.Context)

	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, email, password, name, role string) (*domain.User, error)

	// Logout is best-effort: the session always ends anonymous, even when
	// the backend call fails.
	Logout(ctx context.Context)

	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error)
	ClearError()

	// Snapshot returns the current composite session state.
	Snapshot() domain.Session
}
