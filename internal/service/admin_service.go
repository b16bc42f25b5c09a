package service

import (
	"context"
	"time"

	"github.com/quickcommerce/crm-portal/internal/auth"
	"github.com/quickcommerce/crm-portal/internal/domain"
	"github.com/quickcommerce/crm-portal/internal/events"
	"github.com/quickcommerce/crm-portal/internal/store"
	apperrors "github.com/quickcommerce/crm-portal/pkg/util"
)

// AdminService manages the administrator roster.
type AdminService struct {
	roster     *store.Roster
	dispatcher events.Dispatcher
}

// NewAdminService builds the service.
func NewAdminService(roster *store.Roster, dispatcher events.Dispatcher) *AdminService {
	return &AdminService{roster: roster, dispatcher: dispatcher}
}

// Create issues a fresh temporary password and appends the administrator.
// The returned entry carries the temporary password so the caller can show
// it exactly once.
func (s *AdminService) Create(ctx context.Context, actor, name, email string, role domain.Role) (domain.Administrator, error) {
	if !role.Valid() {
		return domain.Administrator{}, apperrors.NewValidationError("unknown role", map[string]any{"role": string(role)})
	}

	admin := s.roster.Add(name, email, role, auth.GenerateTempPassword())

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:       events.EventAdminCreated,
			Actor:      actor,
			Subject:    admin.Name,
			OccurredAt: time.Now().UTC(),
		})
	}
	return admin, nil
}

// List returns the roster in creation order.
func (s *AdminService) List(_ context.Context) []domain.Administrator {
	return s.roster.Admins()
}
