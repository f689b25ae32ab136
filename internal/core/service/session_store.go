package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
	"github.com/smartgridlink/energy-trading-api/internal/core/ports"
)

// SessionStore holds the single process-wide session and serializes every
// operation against it. State transitions always keep the invariant
// isAuthenticated == (user != nil).
type SessionStore struct {
	identity ports.IdentityService
	events   ports.EventSink
	log      zerolog.Logger

	// ops serializes mutating operations end to end, including the
	// backend call; mu guards state for concurrent Snapshot readers.
	ops sync.Mutex
	mu  sync.RWMutex

	user          *domain.User
	authenticated bool
	loading       bool
	lastErr       string
}

// NewSessionStore builds a store over the given identity backend. events
// may be nil, in which case session events are dropped.
func NewSessionStore(identity ports.IdentityService, events ports.EventSink, log zerolog.Logger) *SessionStore {
	return &SessionStore{identity: identity, events: events, log: log}
}

// Initialize hydrates the session from persisted state. Called once at
// process start.
func (s *SessionStore) Initialize(ctx context.Context) {
	s.ops.Lock()
	defer s.ops.Unlock()

	user := s.identity.CurrentUser()
	s.mu.Lock()
	s.user = user
	s.authenticated = user != nil
	s.mu.Unlock()

	if user != nil {
		s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("session restored")
	}
}

// Login authenticates and transitions the session to authenticated.
// Failures are captured into the error state and propagated.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.ops.Lock()
	defer s.ops.Unlock()

	s.begin()
	user, err := s.identity.Login(ctx, email, password)
	if err != nil {
		s.fail(err)
		s.emit(domain.EventLogin, email, "", false, err.Error())
		return nil, err
	}

	s.setUser(user)
	s.emit(domain.EventLogin, user.Email, user.Role, true, "")
	return user, nil
}

// Signup registers a new account and transitions the session to
// authenticated. Only producer and consumer accounts can self-register.
func (s *SessionStore) Signup(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	s.ops.Lock()
	defer s.ops.Unlock()

	if !domain.SelfRegisterRole(role) {
		s.begin()
		s.fail(domain.ErrRoleNotAllowed)
		return nil, domain.ErrRoleNotAllowed
	}

	s.begin()
	user, err := s.identity.Signup(ctx, email, password, name, role)
	if err != nil {
		s.fail(err)
		s.emit(domain.EventSignup, email, role, false, err.Error())
		return nil, err
	}

	s.setUser(user)
	s.emit(domain.EventSignup, user.Email, user.Role, true, "")
	return user, nil
}

// Logout ends the session. It is best-effort: the session always ends
// anonymous, even when the backend call fails.
func (s *SessionStore) Logout(ctx context.Context) {
	s.ops.Lock()
	defer s.ops.Unlock()

	s.mu.Lock()
	s.loading = true
	email := ""
	if s.user != nil {
		email = s.user.Email
	}
	s.mu.Unlock()

	if err := s.identity.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("backend logout failed, ending session anyway")
	}

	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.loading = false
	s.mu.Unlock()

	s.emit(domain.EventLogout, email, "", true, "")
}

// UpdateProfile merges the partial update through the backend and replaces
// the session user wholesale with the merged record.
func (s *SessionStore) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	s.ops.Lock()
	defer s.ops.Unlock()

	s.begin()
	user, err := s.identity.UpdateProfile(ctx, update)
	if err != nil {
		s.fail(err)
		s.emit(domain.EventProfileUpdated, "", "", false, err.Error())
		return nil, err
	}

	s.setUser(user)
	s.emit(domain.EventProfileUpdated, user.Email, user.Role, true, "")
	return user, nil
}

// ClearError resets the error state with no other side effects.
func (s *SessionStore) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// Snapshot returns the current composite session state.
func (s *SessionStore) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var user *domain.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return domain.Session{
		User:            user,
		IsAuthenticated: s.authenticated,
		IsLoading:       s.loading,
		Error:           s.lastErr,
	}
}

func (s *SessionStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *SessionStore) setUser(user *domain.User) {
	s.mu.Lock()
	s.user = user
	s.authenticated = user != nil
	s.loading = false
	s.mu.Unlock()
}

func (s *SessionStore) fail(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.loading = false
	s.mu.Unlock()
}

func (s *SessionStore) emit(eventType, email, role string, success bool, reason string) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(domain.SessionEvent{
		Type:      eventType,
		Email:     email,
		Role:      role,
		Success:   success,
		Reason:    reason,
		Timestamp: time.Now().Unix(),
	})
}
