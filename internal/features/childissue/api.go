package childissue

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ChildIssueApi struct {
	controller *ChildIssueController
	auth       *middleware.AuthMiddleware
}

func NewChildIssueApi(controller *ChildIssueController, auth *middleware.AuthMiddleware) *ChildIssueApi {
	return &ChildIssueApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers child issue routes
func (h *ChildIssueApi) Setup(app *fiber.App) {
	issues := app.Group("/api/admin/child-issue", h.auth.Handler())

	issues.Post("/", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionEdit), h.controller.CreateChildIssue)
	issues.Post("/all", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionView), h.controller.ListChildIssues)
	issues.Get("/:id", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionView), h.controller.GetChildIssue)
	issues.Patch("/:id", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionEdit), h.controller.UpdateChildIssue)
	issues.Delete("/:id", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionDelete), h.controller.DeleteChildIssue)
}
