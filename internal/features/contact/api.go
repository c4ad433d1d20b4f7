package contact

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ContactApi struct {
	controller *ContactController
	auth       *middleware.AuthMiddleware
}

func NewContactApi(controller *ContactController, auth *middleware.AuthMiddleware) *ContactApi {
	return &ContactApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers contact routes
func (h *ContactApi) Setup(app *fiber.App) {
	contacts := app.Group("/api/admin/contact-us", h.auth.Handler())

	contacts.Post("/", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionEdit), h.controller.CreateContact)
	contacts.Post("/all", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionView), h.controller.ListContacts)
	contacts.Get("/:id", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionView), h.controller.GetContact)
	contacts.Patch("/:id", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionEdit), h.controller.UpdateContact)
	contacts.Delete("/:id", middleware.RequirePermission(models.CategoryContactUs, middleware.ActionDelete), h.controller.DeleteContact)
}
