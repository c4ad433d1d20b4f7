package program

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProgramApi struct {
	controller *ProgramController
	auth       *middleware.AuthMiddleware
}

func NewProgramApi(controller *ProgramController, auth *middleware.AuthMiddleware) *ProgramApi {
	return &ProgramApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers program routes
func (h *ProgramApi) Setup(app *fiber.App) {
	programs := app.Group("/api/admin/program", h.auth.Handler())

	programs.Post("/", middleware.RequirePermission(models.CategoryBooking, middleware.ActionEdit), h.controller.CreateProgram)
	programs.Post("/all", middleware.RequirePermission(models.CategoryBooking, middleware.ActionView), h.controller.ListPrograms)
	programs.Get("/:id", middleware.RequirePermission(models.CategoryBooking, middleware.ActionView), h.controller.GetProgram)
	programs.Patch("/:id", middleware.RequirePermission(models.CategoryBooking, middleware.ActionEdit), h.controller.UpdateProgram)
	programs.Delete("/:id", middleware.RequirePermission(models.CategoryBooking, middleware.ActionDelete), h.controller.DeleteProgram)
}
