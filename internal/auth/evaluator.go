package auth

import (
	"github.com/quickcommerce/crm-portal/internal/domain"
)

// SuperAdmin is the hardcoded portal-owner credential pair. It is checked
// before the roster and is never stored as a roster entry, so its identity
// carries no id.
type SuperAdmin struct {
	Email    string
	Password string
	Name     string
}

// Result is the outcome of a credential evaluation. A failed evaluation
// carries no identity; callers must not touch the session in that case.
type Result struct {
	OK        bool
	Identity  domain.Identity
	Temporary bool
}

// Evaluate decides a login attempt against the super-admin pair and the
// roster, first match wins:
//
//  1. exact super-admin email and password;
//  2. first roster entry with a matching email, its temporary password
//     checked before its permanent one.
//
// Comparisons are exact and case-sensitive. Credentials are plain text by
// design of the demo authority model; there is no hashing and no
// constant-time comparison here.
func Evaluate(super SuperAdmin, email, password string, roster []domain.Administrator) Result {
	if email == super.Email && password == super.Password {
		return Result{
			OK: true,
			Identity: domain.Identity{
				Email: super.Email,
				Name:  super.Name,
				Role:  domain.RoleSuperAdmin,
			},
		}
	}

	for _, admin := range roster {
		if admin.Email != email {
			continue
		}
		identity := domain.Identity{
			ID:    admin.ID,
			Email: admin.Email,
			Name:  admin.Name,
			Role:  admin.Role,
		}
		if admin.TempPassword != "" && password == admin.TempPassword {
			return Result{OK: true, Identity: identity, Temporary: true}
		}
		if admin.Password != "" && password == admin.Password {
			return Result{OK: true, Identity: identity}
		}
		// first email match decides; later duplicates are never consulted
		return Result{}
	}

	return Result{}
}
