package booking

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BookingController struct {
	BookingService BookingService
	Exporter       *BookingExporter
	Logger         *zap.Logger
}

func NewBookingController(bookingService BookingService, exporter *BookingExporter, logger *zap.Logger) *BookingController {
	return &BookingController{
		BookingService: bookingService,
		Exporter:       exporter,
		Logger:         logger,
	}
}

func (ctrl *BookingController) CreateBooking(c *fiber.Ctx) error {
	var input CreateBookingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	booking, err := ctrl.BookingService.CreateBooking(c.Context(), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while creating booking")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Booking created successfully",
		"booking": booking,
	})
}

func (ctrl *BookingController) ListBookings(c *fiber.Ctx) error {
	var filter BookingFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	bookings, total, err := ctrl.BookingService.ListBookings(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching bookings")
	}
	if bookings == nil {
		bookings = []BookingView{}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Bookings fetched successfully",
		"total":    total,
		"bookings": bookings,
	})
}

func (ctrl *BookingController) GetBooking(c *fiber.Ctx) error {
	booking, err := ctrl.BookingService.GetBookingByID(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching booking by ID")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking fetched successfully",
		"booking": booking,
	})
}

func (ctrl *BookingController) UpdateBooking(c *fiber.Ctx) error {
	var input UpdateBookingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	booking, err := ctrl.BookingService.UpdateBooking(c.Context(), c.Params("id"), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating booking")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking updated successfully",
		"booking": booking,
	})
}

func (ctrl *BookingController) DeleteBooking(c *fiber.Ctx) error {
	if err := ctrl.BookingService.DeleteBooking(c.Context(), c.Params("id")); err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while deleting booking")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking deleted successfully",
	})
}

func (ctrl *BookingController) ExportBookings(c *fiber.Ctx) error {
	var filter BookingFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	bookings, _, err := ctrl.BookingService.ListBookings(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while exporting bookings")
	}

	data, err := ctrl.Exporter.Export(bookings)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while exporting bookings")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bookings.xlsx"`)
	return c.Send(data)
}
