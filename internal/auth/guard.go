package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quickcommerce/crm-portal/internal/domain"
	"github.com/quickcommerce/crm-portal/internal/store"
)

const sessionLocalKey = "portal_session"

const (
	loginPath   = "/login"
	landingPath = "/dashboard"
)

// Guard gates protected routes on the current session. Every request
// re-reads the store; nothing is cached between evaluations.
type Guard struct {
	sessions *store.SessionStore
}

// NewGuard constructs a guard over the session store.
func NewGuard(sessions *store.SessionStore) *Guard {
	return &Guard{sessions: sessions}
}

// Require allows any authenticated session through and redirects everyone
// else to the login view. With a role allow-list, an authenticated session
// whose role is not listed is redirected to the default landing view, never
// back to login.
func (g *Guard) Require(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		session := g.sessions.Snapshot()
		if !session.IsAuthenticated || session.User == nil {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		if len(allowedSet) > 0 {
			if _, ok := allowedSet[session.User.Role]; !ok {
				return c.Redirect(landingPath, fiber.StatusFound)
			}
		}
		c.Locals(sessionLocalKey, session)
		return c.Next()
	}
}

// SessionFromContext retrieves the session snapshot stashed by the guard.
func SessionFromContext(c *fiber.Ctx) (domain.Session, bool) {
	val := c.Locals(sessionLocalKey)
	if val == nil {
		return domain.Session{}, false
	}
	session, ok := val.(domain.Session)
	return session, ok
}
