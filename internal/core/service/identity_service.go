package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
	"github.com/smartgridlink/energy-trading-api/internal/core/ports"
)

// SessionKey is the fixed storage key the active session projection is
// persisted under.
const SessionKey = "smartgridlink_user"

// Default latencies stand in for network round-trips to a real identity
// provider. Tests set them to zero.
const (
	defaultLoginDelay  = 800 * time.Millisecond
	defaultSignupDelay = 800 * time.Millisecond
	defaultLogoutDelay = 300 * time.Millisecond
	defaultUpdateDelay = 500 * time.Millisecond
)

// IdentityDelays parameterises the simulated latency per operation.
// Negative values mean "use the default"; zero disables the delay.
type IdentityDelays struct {
	Login  time.Duration
	Signup time.Duration
	Logout time.Duration
	Update time.Duration
}

// NoDelays disables latency simulation entirely.
func NoDelays() IdentityDelays {
	return IdentityDelays{}
}

// DefaultDelays returns the production latency profile.
func DefaultDelays() IdentityDelays {
	return IdentityDelays{
		Login:  defaultLoginDelay,
		Signup: defaultSignupDelay,
		Logout: defaultLogoutDelay,
		Update: defaultUpdateDelay,
	}
}

// IdentityService implements the mock identity backend: credential lookup
// against a repository, session projection persistence, and simulated
// remote latency.
type IdentityService struct {
	creds    ports.CredentialRepository
	sessions ports.SessionStorage
	delays   IdentityDelays
	log      zerolog.Logger
}

func NewIdentityService(
	creds ports.CredentialRepository,
	sessions ports.SessionStorage,
	delays IdentityDelays,
	log zerolog.Logger,
) *IdentityService {
	return &IdentityService{creds: creds, sessions: sessions, delays: delays, log: log}
}

// simulate suspends the operation for d, honouring cancellation. Only the
// calling goroutine parks; the process keeps serving.
func (s *IdentityService) simulate(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login authenticates against the credential table with exact,
// case-sensitive matching and persists the projection on success.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := s.simulate(ctx, s.delays.Login); err != nil {
		return nil, err
	}

	cred, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user := cred.Projection()
	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Signup registers a new account. Ids are monotonic (record count + 1);
// the uniqueness guarantee holds for same-process sequential calls only.
func (s *IdentityService) Signup(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	if err := s.simulate(ctx, s.delays.Signup); err != nil {
		return nil, err
	}

	if _, err := s.creds.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateAccount
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	count, err := s.creds.Count(ctx)
	if err != nil {
		return nil, err
	}

	cred := &domain.Credential{
		User: domain.User{
			ID:        strconv.Itoa(count + 1),
			Email:     email,
			Name:      name,
			Role:      role,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: string(hash),
	}

	created, err := s.creds.Insert(ctx, cred)
	if err != nil {
		return nil, err
	}

	user := created.Projection()
	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the persisted session. It never fails: a storage error is
// logged and swallowed so the caller always ends anonymous.
func (s *IdentityService) Logout(ctx context.Context) error {
	if err := s.simulate(ctx, s.delays.Logout); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, SessionKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
	return nil
}

// UpdateProfile merges the partial update into both the persisted session
// projection and the matching credential record.
func (s *IdentityService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	if err := s.simulate(ctx, s.delays.Update); err != nil {
		return nil, err
	}

	user := s.CurrentUser()
	if user == nil {
		return nil, domain.ErrNoActiveSession
	}

	update.Apply(user)

	if err := s.creds.UpdateProfileByID(ctx, user.ID, update); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("credential record update failed")
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CurrentUser reads the persisted session. Missing or malformed state
// reads as nil; the method never fails.
func (s *IdentityService) CurrentUser() *domain.User {
	raw, err := s.sessions.Get(context.Background(), SessionKey)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil
	}
	return &user
}

func (s *IdentityService) persist(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.sessions.Set(ctx, SessionKey, raw)
}
