package booking

import (
	"go-admin/internal/common/models"
	"go-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BookingApi struct {
	controller *BookingController
	auth       *middleware.AuthMiddleware
}

func NewBookingApi(controller *BookingController, auth *middleware.AuthMiddleware) *BookingApi {
	return &BookingApi{
		controller: controller,
		auth:       auth,
	}
}

// Setup registers booking routes
func (h *BookingApi) Setup(app *fiber.App) {
	bookings := app.Group("/api/admin/booking", h.auth.Handler())

	bookings.Post("/", middleware.RequirePermission(models.CategoryBooking, middleware.ActionEdit), h.controller.CreateBooking)
	bookings.Post("/all", middleware.RequirePermission(models.CategoryBooking, middleware.ActionView), h.controller.ListBookings)
	bookings.Post("/export", middleware.RequirePermission(models.CategoryBooking, middleware.ActionView), h.controller.ExportBookings)
	bookings.Get("/:id", middleware.RequirePermission(models.CategoryBooking, middleware.ActionView), h.controller.GetBooking)
	bookings.Patch("/:id", middleware.RequirePermission(models.CategoryBooking, middleware.ActionEdit), h.controller.UpdateBooking)
	bookings.Delete("/:id", middleware.RequirePermission(models.CategoryBooking, middleware.ActionDelete), h.controller.DeleteBooking)
}
