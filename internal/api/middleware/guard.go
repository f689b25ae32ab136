package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

// Guard enforces role-gated access to a route. The decision is delegated
// to domain.Decide and re-evaluated on every request: RedirectLogin maps
// to 401, RedirectUnauthorized to ErrForbidden, which the central error
// handler renders as 403.
func Guard(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch domain.Decide(sessionFromContext(c), allowedRoles...) {
			case domain.RedirectLogin:
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			case domain.RedirectUnauthorized:
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// sessionFromContext reconstructs a session snapshot from the claims the
// Auth middleware injected. No claims means an anonymous session.
func sessionFromContext(c echo.Context) domain.Session {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Session{}
	}

	id, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	name, _ := c.Get("name").(string)
	return domain.Session{
		User:            &domain.User{ID: id, Email: email, Name: name, Role: role},
		IsAuthenticated: true,
	}
}
