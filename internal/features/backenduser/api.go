package backenduser

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BackendUserApi struct {
	controller *BackendUserController
	auth       *middleware.AuthMiddleware
}

func NewBackendUserApi(controller *BackendUserController, auth *middleware.AuthMiddleware) *BackendUserApi {
	return &BackendUserApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers backend user routes
func (h *BackendUserApi) Setup(app *fiber.App) {
	users := app.Group("/api/admin/backend-user", h.auth.Handler())

	users.Post("/", middleware.RequirePermission(models.CategoryBackendUser, middleware.ActionEdit), h.controller.CreateBackendUser)
	users.Post("/all", middleware.RequirePermission(models.CategoryBackendUser, middleware.ActionView), h.controller.ListBackendUsers)
	users.Get("/:id", middleware.RequirePermission(models.CategoryBackendUser, middleware.ActionView), h.controller.GetBackendUser)
	users.Patch("/:id", middleware.RequirePermission(models.CategoryBackendUser, middleware.ActionEdit), h.controller.UpdateBackendUser)
	users.Delete("/:id", middleware.RequirePermission(models.CategoryBackendUser, middleware.ActionDelete), h.controller.DeleteBackendUser)
}
