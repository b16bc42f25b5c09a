package domain

import "time"

// Role enumerates administrator roles assignable at creation.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleSupport Role = "support"
	RoleAnalyst Role = "analyst"

	// RoleSuperAdmin belongs only to the hardcoded portal owner identity.
	// It is never stored on a roster entry.
	RoleSuperAdmin Role = "super_admin"
)

// AssignableRoles lists the roles a new administrator may be given.
func AssignableRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleSupport, RoleAnalyst}
}

// Valid reports whether the role is one of the assignable roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSupport, RoleAnalyst:
		return true
	}
	return false
}

// Administrator models a created admin account. Exactly one of
// TempPassword and Password is set at any time: TempPassword at creation,
// Password once the reset flow completes.
type Administrator struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	TempPassword string    `json:"tempPassword,omitempty"`
	Password     string    `json:"password,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PendingReset reports whether the account still carries its temporary
// credential.
func (a Administrator) PendingReset() bool {
	return a.TempPassword != ""
}
