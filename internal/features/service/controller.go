package service

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ServiceController struct {
	ServiceService ServiceService
	Logger         *zap.Logger
}

func NewServiceController(serviceService ServiceService, logger *zap.Logger) *ServiceController {
	return &ServiceController{
		ServiceService: serviceService,
		Logger:         logger,
	}
}

func (ctrl *ServiceController) CreateService(c *fiber.Ctx) error {
	var input CreateServiceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	service, err := ctrl.ServiceService.CreateService(c.Context(), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while creating service")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Service created successfully",
		"service": service,
	})
}

func (ctrl *ServiceController) ListServices(c *fiber.Ctx) error {
	var filter ServiceFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	services, total, err := ctrl.ServiceService.ListServices(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching services")
	}
	if services == nil {
		services = []Service{}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Services fetched successfully",
		"total":    total,
		"services": services,
	})
}

func (ctrl *ServiceController) GetService(c *fiber.Ctx) error {
	service, err := ctrl.ServiceService.GetServiceByID(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching service")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service fetched successfully",
		"service": service,
	})
}

func (ctrl *ServiceController) UpdateService(c *fiber.Ctx) error {
	var input UpdateServiceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	service, err := ctrl.ServiceService.UpdateService(c.Context(), c.Params("id"), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating service")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service updated successfully",
		"service": service,
	})
}

func (ctrl *ServiceController) DeleteService(c *fiber.Ctx) error {
	if err := ctrl.ServiceService.DeleteService(c.Context(), c.Params("id")); err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while deleting service")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service deleted successfully",
	})
}
