package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/quickcommerce/crm-portal/internal/api/dto"
	"github.com/quickcommerce/crm-portal/internal/auth"
	"github.com/quickcommerce/crm-portal/internal/service"
	apperrors "github.com/quickcommerce/crm-portal/pkg/util"
)

// AuthHandler exposes the sign-in, sign-out and reset endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	validate *validator.Validate
	portal   string
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService, portalName string) *AuthHandler {
	return &AuthHandler{
		auth:     authService,
		validate: validator.New(),
		portal:   portalName,
	}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"portal": h.portal,
			"title":  "Admin Portal",
		},
	})
}

// Login handles POST /login. Failure is deliberately generic: the response
// does not distinguish an unknown email from a wrong password.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("email and password required", validationDetails(err))
	}

	result := h.auth.Login(c.Context(), req.Email, req.Password)
	if !result.OK {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	redirect := "/dashboard"
	notice := "Welcome back, " + result.Identity.Name + "!"
	if result.Temporary {
		redirect = "/reset-password"
		notice = "Please reset your temporary password"
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.SessionUser{
				ID:    result.Identity.ID,
				Email: result.Identity.Email,
				Name:  result.Identity.Name,
				Role:  string(result.Identity.Role),
			},
			"temporaryPassword": result.Temporary,
			"redirect":          redirect,
			"notice":            notice,
		},
	})
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout(c.Context())
	return c.JSON(fiber.Map{
		"data": fiber.Map{"redirect": "/login"},
	})
}

// ResetPage handles GET /reset-password.
func (h *AuthHandler) ResetPage(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	forced := session.IsTemporaryPassword
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"title":  "Reset Password",
			"forced": forced,
		},
	})
}

// ResetPassword handles POST /reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("passwords must be filled in and match", validationDetails(err))
	}

	if err := h.auth.ResetPassword(c.Context(), req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"redirect": "/dashboard",
			"notice":   "Password updated successfully!",
		},
	})
}

// validationDetails flattens validator errors into a field -> rule map.
func validationDetails(err error) map[string]any {
	details := map[string]any{}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			details[fe.Field()] = fe.Tag()
		}
	}
	return details
}
