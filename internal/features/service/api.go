package service

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ServiceApi struct {
	controller *ServiceController
	auth       *middleware.AuthMiddleware
}

func NewServiceApi(controller *ServiceController, auth *middleware.AuthMiddleware) *ServiceApi {
	return &ServiceApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers service routes
func (h *ServiceApi) Setup(app *fiber.App) {
	services := app.Group("/api/admin/service", h.auth.Handler())

	services.Post("/", middleware.RequirePermission(models.CategoryBooking, middleware.ActionEdit), h.controller.CreateService)
	services.Post("/all", middleware.RequirePermission(models.CategoryBooking, middleware.ActionView), h.controller.ListServices)
	services.Get("/:id", middleware.RequirePermission(models.CategoryBooking, middleware.ActionView), h.controller.GetService)
	services.Patch("/:id", middleware.RequirePermission(models.CategoryBooking, middleware.ActionEdit), h.controller.UpdateService)
	services.Delete("/:id", middleware.RequirePermission(models.CategoryBooking, middleware.ActionDelete), h.controller.DeleteService)
}
