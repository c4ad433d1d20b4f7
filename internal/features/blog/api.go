package blog

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BlogApi struct {
	controller *BlogController
	auth       *middleware.AuthMiddleware
}

func NewBlogApi(controller *BlogController, auth *middleware.AuthMiddleware) *BlogApi {
	return &BlogApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers blog routes. Publishing needs the full permission
// level, not just edit.
func (h *BlogApi) Setup(app *fiber.App) {
	blogs := app.Group("/api/admin/blog", h.auth.Handler())

	blogs.Post("/", middleware.RequirePermission(models.CategoryBlog, middleware.ActionEdit), h.controller.CreateBlog)
	blogs.Post("/all", middleware.RequirePermission(models.CategoryBlog, middleware.ActionView), h.controller.ListBlogs)
	blogs.Get("/:id", middleware.RequirePermission(models.CategoryBlog, middleware.ActionView), h.controller.GetBlog)
	blogs.Patch("/:id/status", middleware.RequirePermission(models.CategoryBlog, middleware.ActionAll), h.controller.ToggleBlogStatus)
	blogs.Patch("/:id", middleware.RequirePermission(models.CategoryBlog, middleware.ActionEdit), h.controller.UpdateBlog)
	blogs.Delete("/:id", middleware.RequirePermission(models.CategoryBlog, middleware.ActionDelete), h.controller.DeleteBlog)
}
