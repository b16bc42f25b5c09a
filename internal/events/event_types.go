package events

import "time"

// EventType names a portal lifecycle event.
type EventType string

const (
	EventAdminCreated  EventType = "admin.created"
	EventPasswordReset EventType = "admin.password_reset"
	EventLoginSuccess  EventType = "auth.login"
	EventLoginFailure  EventType = "auth.login_failed"
	EventLogout        EventType = "auth.logout"
)

// Event is a portal lifecycle notification delivered to subscribers.
type Event struct {
	Type       EventType
	Actor      string // email of the acting or attempted identity
	Subject    string // affected administrator name, when applicable
	OccurredAt time.Time
}
