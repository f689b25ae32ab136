package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
	"github.com/smartgridlink/energy-trading-api/internal/core/service"
)

type stubSessionStore struct {
	loginFn   func(ctx context.Context, email, password string) (*domain.User, error)
	signupFn  func(ctx context.Context, email, password, name, role string) (*domain.User, error)
	updateFn  func(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error)
	loggedOut bool
	snapshot  domain.Session
}

func (s *stubSessionStore) Initialize(context.Context) {}

func (s *stubSessionStore) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionStore) Signup(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	return s.signupFn(ctx, email, password, name, role)
}

func (s *stubSessionStore) Logout(context.Context) { s.loggedOut = true }

func (s *stubSessionStore) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	return s.updateFn(ctx, update)
}

func (s *stubSessionStore) ClearError() {}

func (s *stubSessionStore) Snapshot() domain.Session { return s.snapshot }

func newAuthTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTestAuthHandler(store *stubSessionStore) *AuthHandler {
	return NewAuthHandler(store, service.NewSignupValidator(), "test-secret", time.Hour)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	store := &stubSessionStore{
		loginFn: func(_ context.Context, email, _ string) (*domain.User, error) {
			return &domain.User{ID: "1", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	h := newTestAuthHandler(store)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"admin@smartgridlink.com","password":"admin123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token in the response")
	}
	if resp.User == nil || resp.User.Email != "admin@smartgridlink.com" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	store := &stubSessionStore{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := newTestAuthHandler(store)

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"admin@smartgridlink.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := newTestAuthHandler(&stubSessionStore{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			t.Fatalf("store must not be called on invalid payload")
			return nil, nil
		},
	})

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	store := &stubSessionStore{
		signupFn: func(_ context.Context, email, _, name, role string) (*domain.User, error) {
			return &domain.User{ID: "8", Email: email, Name: name, Role: role}, nil
		},
	}
	h := newTestAuthHandler(store)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/signup", `{
		"role": "consumer",
		"name": "Home User",
		"email": "home@x.com",
		"password": "pw123456",
		"confirm_password": "pw123456",
		"address": "2 Grid St",
		"connection_type": "residential",
		"average_monthly_usage": 320,
		"agree_to_terms": true
	}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.Role != domain.RoleConsumer {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
}

func TestAuthHandler_Signup_AdminRoleRejected(t *testing.T) {
	h := newTestAuthHandler(&stubSessionStore{
		signupFn: func(context.Context, string, string, string, string) (*domain.User, error) {
			t.Fatalf("store must not be called for admin signup")
			return nil, nil
		},
	})

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/signup",
		`{"role":"admin","name":"A","email":"a@x.com","password":"pw123456","confirm_password":"pw123456","agree_to_terms":true}`)

	if err := h.Signup(c); !errors.Is(err, domain.ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
	}
}

func TestAuthHandler_Signup_FieldErrors(t *testing.T) {
	h := newTestAuthHandler(&stubSessionStore{
		signupFn: func(context.Context, string, string, string, string) (*domain.User, error) {
			t.Fatalf("store must not be called when the wizard form is invalid")
			return nil, nil
		},
	})

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/signup",
		`{"role":"producer","email":"bad","password":"pw123456","confirm_password":"other"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("field errors are written, not returned: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp fieldErrorsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"name", "email", "confirm_password", "energy_source_type", "agree_to_terms"} {
		if resp.Errors[field] == "" {
			t.Fatalf("expected error on %s, got %+v", field, resp.Errors)
		}
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	store := &stubSessionStore{}
	h := newTestAuthHandler(store)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !store.loggedOut {
		t.Fatalf("store.Logout not invoked")
	}
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	store := &stubSessionStore{
		updateFn: func(_ context.Context, update domain.ProfileUpdate) (*domain.User, error) {
			u := &domain.User{ID: "1", Email: "a@x.com", Role: domain.RoleProducer}
			update.Apply(u)
			return u, nil
		},
	}
	h := newTestAuthHandler(store)

	c, rec := newAuthTestContext(t, http.MethodPatch, "/auth/profile",
		`{"address":"9 New Rd","is_system_offline":true}`)

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.Address != "9 New Rd" || !resp.User.IsSystemOffline {
		t.Fatalf("update not reflected: %+v", resp.User)
	}
}

func TestAuthHandler_UpdateProfile_NoSession(t *testing.T) {
	h := newTestAuthHandler(&stubSessionStore{
		updateFn: func(context.Context, domain.ProfileUpdate) (*domain.User, error) {
			return nil, domain.ErrNoActiveSession
		},
	})

	c, _ := newAuthTestContext(t, http.MethodPatch, "/auth/profile", `{"address":"X"}`)

	if err := h.UpdateProfile(c); !errors.Is(err, domain.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	store := &stubSessionStore{snapshot: domain.Session{
		User:            &domain.User{ID: "1", Email: "a@x.com", Role: domain.RoleProducer},
		IsAuthenticated: true,
	}}
	h := newTestAuthHandler(store)

	c, rec := newAuthTestContext(t, http.MethodGet, "/auth/me", "")

	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !sess.IsAuthenticated || sess.User == nil || sess.User.Email != "a@x.com" {
		t.Fatalf("unexpected snapshot: %+v", sess)
	}
}
