package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/smartgridlink/energy-trading-api/internal/api/metrics"
	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
	"github.com/smartgridlink/energy-trading-api/internal/core/ports"
	"github.com/smartgridlink/energy-trading-api/internal/core/service"
)

// AuthHandler exposes the session lifecycle over HTTP: login, multi-step
// signup, logout, profile update, and the current-session probe.
type AuthHandler struct {
	store     ports.SessionStore
	signup    *service.SignupValidator
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(store ports.SessionStore, signup *service.SignupValidator, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{store: store, signup: signup, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Role string `json:"role"`
	service.SignupForm
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type fieldErrorsResponse struct {
	Errors service.FieldErrors `json:"errors"`
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	user, err := h.store.Login(c.Request().Context(), req.Email, req.Password)
	metrics.SessionOperationDuration.WithLabelValues("login").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	token, err := h.generateToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Signup validates the full signup wizard and creates a new account.
//
// @Summary      Register a new producer or consumer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup wizard form"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  fieldErrorsResponse
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if !domain.SelfRegisterRole(req.Role) {
		return domain.ErrRoleNotAllowed
	}
	if fieldErrs := h.signup.ValidateAll(req.Role, req.SignupForm); len(fieldErrs) > 0 {
		return c.JSON(http.StatusBadRequest, fieldErrorsResponse{Errors: fieldErrs})
	}

	start := time.Now()
	user, err := h.store.Signup(c.Request().Context(), req.Email, req.Password, req.Name, req.Role)
	metrics.SessionOperationDuration.WithLabelValues("signup").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(req.Role, "failure").Inc()
		metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues(req.Role, "success").Inc()
	token, err := h.generateToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Logout ends the session. Always succeeds from the caller's perspective.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	start := time.Now()
	h.store.Logout(c.Request().Context())
	metrics.SessionOperationDuration.WithLabelValues("logout").Observe(time.Since(start).Seconds())
	metrics.LogoutsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// UpdateProfile merges the partial update into the active session's user.
//
// @Summary      Update profile fields
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProfileUpdate  true  "Fields to update"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/profile [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var update domain.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	user, err := h.store.UpdateProfile(c.Request().Context(), update)
	metrics.SessionOperationDuration.WithLabelValues("update_profile").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Me returns the current session snapshot.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Session
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *AuthHandler) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"exp":   time.Now().Add(h.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrDuplicateAccount):
		return "duplicate_account"
	case errors.Is(err, domain.ErrNoActiveSession):
		return "no_active_session"
	case errors.Is(err, domain.ErrRoleNotAllowed):
		return "role_not_allowed"
	default:
		return "internal"
	}
}
