package role

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RoleApi struct {
	controller *RoleController
	auth       *middleware.AuthMiddleware
}

func NewRoleApi(controller *RoleController, auth *middleware.AuthMiddleware) *RoleApi {
	return &RoleApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers role-and-permission routes
func (h *RoleApi) Setup(app *fiber.App) {
	roles := app.Group("/api/admin/role-permission", h.auth.Handler())

	roles.Post("/", middleware.RequirePermission(models.CategoryRoleAndPermissions, middleware.ActionEdit), h.controller.CreateRole)
	roles.Post("/all", middleware.RequirePermission(models.CategoryRoleAndPermissions, middleware.ActionView), h.controller.ListRoles)
	roles.Get("/:id", middleware.RequirePermission(models.CategoryRoleAndPermissions, middleware.ActionView), h.controller.GetRole)
	roles.Patch("/:id", middleware.RequirePermission(models.CategoryRoleAndPermissions, middleware.ActionEdit), h.controller.UpdateRole)
	roles.Delete("/:id", middleware.RequirePermission(models.CategoryRoleAndPermissions, middleware.ActionDelete), h.controller.DeleteRole)
}
