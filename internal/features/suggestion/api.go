package suggestion

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SuggestionApi struct {
	controller *SuggestionController
	auth       *middleware.AuthMiddleware
}

func NewSuggestionApi(controller *SuggestionController, auth *middleware.AuthMiddleware) *SuggestionApi {
	return &SuggestionApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers suggestion routes
func (h *SuggestionApi) Setup(app *fiber.App) {
	suggestions := app.Group("/api/admin/suggestion", h.auth.Handler())

	suggestions.Post("/", middleware.RequirePermission(models.CategorySuggestions, middleware.ActionEdit), h.controller.CreateSuggestion)
	suggestions.Post("/all", middleware.RequirePermission(models.CategorySuggestions, middleware.ActionView), h.controller.ListSuggestions)
	suggestions.Get("/:id", middleware.RequirePermission(models.CategorySuggestions, middleware.ActionView), h.controller.GetSuggestion)
	suggestions.Patch("/:id", middleware.RequirePermission(models.CategorySuggestions, middleware.ActionEdit), h.controller.UpdateSuggestion)
	suggestions.Delete("/:id", middleware.RequirePermission(models.CategorySuggestions, middleware.ActionDelete), h.controller.DeleteSuggestion)
}
