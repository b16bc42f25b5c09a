package service

import (
	"context"
	"time"

	"github.com/quickcommerce/crm-portal/internal/auth"
	"github.com/quickcommerce/crm-portal/internal/config"
	"github.com/quickcommerce/crm-portal/internal/events"
	"github.com/quickcommerce/crm-portal/internal/store"
	apperrors "github.com/quickcommerce/crm-portal/pkg/util"
)

// AuthService coordinates the login, logout and password-reset flows.
type AuthService struct {
	roster     *store.Roster
	sessions   *store.SessionStore
	dispatcher events.Dispatcher
	superAdmin auth.SuperAdmin
	minLength  int
}

// AuthDependencies encapsulates store requirements for the auth service.
type AuthDependencies struct {
	Roster     *store.Roster
	Sessions   *store.SessionStore
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		roster:     deps.Roster,
		sessions:   deps.Sessions,
		dispatcher: deps.Dispatcher,
		superAdmin: auth.SuperAdmin{
			Email:    cfg.Auth.SuperAdminEmail,
			Password: cfg.Auth.SuperAdminPassword,
			Name:     cfg.Auth.SuperAdminName,
		},
		minLength: cfg.Auth.MinPasswordLength,
	}
}

// Login evaluates the credentials and, on success, establishes the session.
// The outcome is returned directly; a failed attempt leaves the session
// untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) auth.Result {
	result := auth.Evaluate(s.superAdmin, email, password, s.roster.Admins())
	if !result.OK {
		s.publish(ctx, events.EventLoginFailure, email, "")
		return result
	}

	s.sessions.Establish(result.Identity, result.Temporary)
	s.publish(ctx, events.EventLoginSuccess, result.Identity.Email, result.Identity.Name)
	return result
}

// Logout resets the session unconditionally.
func (s *AuthService) Logout(ctx context.Context) {
	actor := ""
	if session := s.sessions.Snapshot(); session.User != nil {
		actor = session.User.Email
	}
	s.sessions.Logout()
	s.publish(ctx, events.EventLogout, actor, "")
}

// ResetPassword replaces the signed-in administrator's credential and lifts
// the temporary-password obligation. Field-level validation happens at the
// transport layer; the policy checks live here.
func (s *AuthService) ResetPassword(ctx context.Context, newPassword string) error {
	if len(newPassword) < s.minLength {
		return apperrors.NewValidationError("password too short", map[string]any{"min_length": s.minLength})
	}

	session := s.sessions.Snapshot()
	if !session.IsAuthenticated || session.User == nil {
		return apperrors.NewUnauthorized("not signed in")
	}
	if session.User.ID == "" {
		// the hardcoded super admin has no roster entry to update
		return apperrors.NewValidationError("account has no stored credential", nil)
	}

	// an unknown id is logged by the roster and otherwise treated as a
	// no-op; the reset still completes from the user's point of view
	s.roster.UpdatePassword(session.User.ID, newPassword)
	s.sessions.ClearTemporary()
	s.publish(ctx, events.EventPasswordReset, session.User.Email, session.User.Name)
	return nil
}

func (s *AuthService) publish(ctx context.Context, t events.EventType, actor, subject string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:       t,
		Actor:      actor,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
	})
}
