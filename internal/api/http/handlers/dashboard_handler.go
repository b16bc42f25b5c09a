package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quickcommerce/crm-portal/internal/api/dto"
	"github.com/quickcommerce/crm-portal/internal/audit"
	"github.com/quickcommerce/crm-portal/internal/auth"
	"github.com/quickcommerce/crm-portal/internal/domain"
	"github.com/quickcommerce/crm-portal/internal/store"
	apperrors "github.com/quickcommerce/crm-portal/pkg/util"
)

// statCard is one dashboard headline widget.
type statCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// chartPoint is one month of the mock analytics series.
type chartPoint struct {
	Name    string `json:"name"`
	Value   int    `json:"value"`
	Revenue int    `json:"revenue"`
}

// Demo analytics, shown to every authenticated role.
var (
	dashboardStats = []statCard{
		{Title: "Total Orders", Value: "12,543", Change: "+12.5%", Trend: "up"},
		{Title: "Active Users", Value: "8,492", Change: "+8.2%", Trend: "up"},
		{Title: "Revenue", Value: "$54,239", Change: "+23.1%", Trend: "up"},
		{Title: "Growth Rate", Value: "28.3%", Change: "-2.4%", Trend: "down"},
	}

	dashboardChart = []chartPoint{
		{Name: "Jan", Value: 4000, Revenue: 2400},
		{Name: "Feb", Value: 3000, Revenue: 1398},
		{Name: "Mar", Value: 2000, Revenue: 9800},
		{Name: "Apr", Value: 2780, Revenue: 3908},
		{Name: "May", Value: 1890, Revenue: 4800},
		{Name: "Jun", Value: 2390, Revenue: 3800},
		{Name: "Jul", Value: 3490, Revenue: 4300},
	}

	menuItems = []dto.NavItem{
		{Label: "Dashboard", Path: "/dashboard", Roles: []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleManager, domain.RoleSupport, domain.RoleAnalyst}},
		{Label: "Create Admin", Path: "/dashboard/create-admin", Roles: []domain.Role{domain.RoleSuperAdmin}},
		{Label: "Manage Admins", Path: "/dashboard/admins", Roles: []domain.Role{domain.RoleSuperAdmin}},
		{Label: "Settings", Path: "/dashboard/settings", Roles: []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleManager, domain.RoleSupport, domain.RoleAnalyst}},
	}
)

// DashboardHandler serves the authenticated portal views.
type DashboardHandler struct {
	sessions *store.SessionStore
	activity *audit.Recorder
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(sessions *store.SessionStore, activity *audit.Recorder) *DashboardHandler {
	return &DashboardHandler{sessions: sessions, activity: activity}
}

// Index handles GET /: straight to the dashboard when signed in, otherwise
// to the login view.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	if h.sessions.Snapshot().IsAuthenticated {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// Dashboard handles GET /dashboard.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"stats":    dashboardStats,
			"chart":    dashboardChart,
			"activity": h.activity.Recent(10),
			"menu":     menuFor(session),
		},
	})
}

// Settings handles GET /dashboard/settings.
func (h *DashboardHandler) Settings(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	var user *dto.SessionUser
	if session.User != nil {
		user = &dto.SessionUser{
			ID:    session.User.ID,
			Email: session.User.Email,
			Name:  session.User.Name,
			Role:  string(session.User.Role),
		}
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"title": "Settings",
			"user":  user,
			"menu":  menuFor(session),
		},
	})
}

// NotFound handles every unmatched path.
func (h *DashboardHandler) NotFound(c *fiber.Ctx) error {
	return apperrors.NewNotFound("page", nil)
}

// menuFor filters the sidebar to the items the session's role may see.
func menuFor(session domain.Session) []dto.NavItem {
	if session.User == nil {
		return nil
	}
	items := make([]dto.NavItem, 0, len(menuItems))
	for _, item := range menuItems {
		for _, role := range item.Roles {
			if role == session.User.Role {
				items = append(items, item)
				break
			}
		}
	}
	return items
}
