package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/quickcommerce/crm-portal/internal/api/dto"
	"github.com/quickcommerce/crm-portal/internal/auth"
	"github.com/quickcommerce/crm-portal/internal/domain"
	"github.com/quickcommerce/crm-portal/internal/service"
	apperrors "github.com/quickcommerce/crm-portal/pkg/util"
)

// AdminsHandler exposes the administrator-management endpoints. The routes
// are restricted to the super admin by the guard.
type AdminsHandler struct {
	admins   *service.AdminService
	validate *validator.Validate
}

// NewAdminsHandler constructs the handler.
func NewAdminsHandler(adminService *service.AdminService) *AdminsHandler {
	return &AdminsHandler{admins: adminService, validate: validator.New()}
}

// CreatePage handles GET /dashboard/create-admin.
func (h *AdminsHandler) CreatePage(c *fiber.Ctx) error {
	roles := make([]string, 0, len(domain.AssignableRoles()))
	for _, role := range domain.AssignableRoles() {
		roles = append(roles, string(role))
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"title": "Create New Admin",
			"roles": roles,
		},
	})
}

// Create handles POST /dashboard/create-admin. The temporary password is
// included in the response exactly once; it is never listed again.
func (h *AdminsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("name, email and role required", validationDetails(err))
	}

	actor := ""
	if session, ok := auth.SessionFromContext(c); ok && session.User != nil {
		actor = session.User.Email
	}

	admin, err := h.admins.Create(c.Context(), actor, req.Name, req.Email, domain.Role(req.Role))
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"admin":        dto.NewAdminSummary(admin),
			"tempPassword": admin.TempPassword,
			"notice":       "Make sure to save this password. It won't be shown again.",
		},
	})
}

// List handles GET /dashboard/admins.
func (h *AdminsHandler) List(c *fiber.Ctx) error {
	admins := h.admins.List(c.Context())
	summaries := make([]dto.AdminSummary, 0, len(admins))
	for _, admin := range admins {
		summaries = append(summaries, dto.NewAdminSummary(admin))
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"admins": summaries},
	})
}
