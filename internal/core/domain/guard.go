package domain

// Decision is the outcome of evaluating a session against a page's
// allowed-role set.
type Decision int

const (
	Render Decision = iota
	RedirectLogin
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect_login"
	case RedirectUnauthorized:
		return "redirect_unauthorized"
	default:
		return "unknown"
	}
}

// Application paths. The guard and the dashboard redirect resolve to these.
const (
	PathLogin             = "/login"
	PathAdminDashboard    = "/admin/dashboard"
	PathProducerDashboard = "/producer/dashboard"
	PathConsumerDashboard = "/consumer/dashboard"
)

// Decide evaluates a session against the allowed roles for a page.
// It is pure and must be re-evaluated on every navigation; session state
// may change between renders.
func Decide(sess Session, allowedRoles ...string) Decision {
	if !sess.IsAuthenticated {
		return RedirectLogin
	}
	if len(allowedRoles) == 0 {
		return Render
	}
	if sess.User == nil {
		return RedirectUnauthorized
	}
	for _, r := range allowedRoles {
		if sess.User.Role == r {
			return Render
		}
	}
	return RedirectUnauthorized
}

// DashboardPath maps a user to their role-specific dashboard path.
// A missing user or unrecognised role resolves to the login path.
func DashboardPath(user *User) string {
	if user == nil {
		return PathLogin
	}
	switch user.Role {
	case RoleAdmin:
		return PathAdminDashboard
	case RoleProducer:
		return PathProducerDashboard
	case RoleConsumer:
		return PathConsumerDashboard
	default:
		return PathLogin
	}
}
