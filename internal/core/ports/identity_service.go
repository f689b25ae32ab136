package ports

import (
	"context"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

// IdentityService is the identity backend contract. Every mutating call
// simulates remote latency by suspending on the context, and persists the
// active session projection through SessionStorage.
type IdentityService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, email, password, name, role string) (*domain.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error)

	// CurrentUser reads the persisted session synchronously. Missing or
	// malformed persisted state reads as nil; it never fails.
	CurrentUser() *domain.User
}
