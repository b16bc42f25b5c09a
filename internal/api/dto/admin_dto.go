package dto

import (
	"time"

	"github.com/quickcommerce/crm-portal/internal/domain"
)

// CreateAdminRequest payload for the admin-creation form.
type CreateAdminRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// AdminSummary is a roster entry stripped of credential fields.
type AdminSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PendingReset bool      `json:"pendingReset"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewAdminSummary maps a roster entry to its listing form.
func NewAdminSummary(admin domain.Administrator) AdminSummary {
	return AdminSummary{
		ID:           admin.ID,
		Name:         admin.Name,
		Email:        admin.Email,
		Role:         string(admin.Role),
		PendingReset: admin.PendingReset(),
		CreatedAt:    admin.CreatedAt,
	}
}

// NavItem is one sidebar entry, restricted to the listed roles.
type NavItem struct {
	Label string        `json:"label"`
	Path  string        `json:"path"`
	Roles []domain.Role `json:"-"`
}
