package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quickcommerce/crm-portal/internal/api/http/handlers"
	"github.com/quickcommerce/crm-portal/internal/auth"
	"github.com/quickcommerce/crm-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Admins    *handlers.AdminsHandler
	Dashboard *handlers.DashboardHandler
	Guard     *auth.Guard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Dashboard.Index)
	app.Get("/login", cfg.Auth.LoginPage)
	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)

	// guards are attached per route so unmatched paths still reach the
	// not-found handler instead of a login redirect
	protected := cfg.Guard.Require()
	app.Get("/reset-password", protected, cfg.Auth.ResetPage)
	app.Post("/reset-password", protected, cfg.Auth.ResetPassword)
	app.Get("/dashboard", protected, cfg.Dashboard.Dashboard)
	app.Get("/dashboard/settings", protected, cfg.Dashboard.Settings)

	restricted := cfg.Guard.Require(domain.RoleSuperAdmin)
	app.Get("/dashboard/create-admin", restricted, cfg.Admins.CreatePage)
	app.Post("/dashboard/create-admin", restricted, cfg.Admins.Create)
	app.Get("/dashboard/admins", restricted, cfg.Admins.List)

	app.Use(cfg.Dashboard.NotFound)
}
