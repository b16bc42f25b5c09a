package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quickcommerce/crm-portal/internal/store"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	state       *store.FileStore
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, state *store.FileStore) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, state: state}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness by checking the snapshot directory.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.state.Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "state directory unavailable",
				"details": fiber.Map{"state": err.Error()},
			},
		})
	}
	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": fiber.Map{"state": "ok"},
	})
}
