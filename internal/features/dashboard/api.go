package dashboard

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	controller *DashboardController
	auth       *middleware.AuthMiddleware
}

func NewDashboardApi(controller *DashboardController, auth *middleware.AuthMiddleware) *DashboardApi {
	return &DashboardApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers the dashboard route
func (h *DashboardApi) Setup(app *fiber.App) {
	app.Get("/api/admin/dashboard",
		h.auth.Handler(),
		middleware.RequirePermission(models.CategoryDashboard, middleware.ActionView),
		h.controller.GetDashboard,
	)
}
