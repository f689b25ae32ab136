package domain

// Session is an immutable snapshot of the process-wide session state.
// Invariant: IsAuthenticated == (User != nil) after every store transition.
type Session struct {
	User            *User  `json:"user,omitempty"`
	IsAuthenticated bool   `json:"is_authenticated"`
	IsLoading       bool   `json:"is_loading"`
	Error           string `json:"error,omitempty"`
}

// SessionEvent records a single session transition for the audit trail.
type SessionEvent struct {
	Type      string `json:"type"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	Success   bool   `json:"success"`
	Reason    string `json:"reason,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

const (
	EventLogin          = "login"
	EventSignup         = "signup"
	EventLogout         = "logout"
	EventProfileUpdated = "profile_updated"
)
