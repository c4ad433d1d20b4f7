package contact

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ContactController struct {
	ContactService ContactService
	Logger         *zap.Logger
}

func NewContactController(contactService ContactService, logger *zap.Logger) *ContactController {
	return &ContactController{
		ContactService: contactService,
		Logger:         logger,
	}
}

func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	var input CreateContactInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	contact, err := ctrl.ContactService.CreateContact(c.Context(), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while creating contact")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Contact created successfully",
		"contact": contact,
	})
}

func (ctrl *ContactController) ListContacts(c *fiber.Ctx) error {
	var filter ContactFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	contacts, total, err := ctrl.ContactService.ListContacts(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching contacts")
	}
	if contacts == nil {
		contacts = []ContactView{}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Contacts fetched successfully",
		"total":    total,
		"contacts": contacts,
	})
}

func (ctrl *ContactController) GetContact(c *fiber.Ctx) error {
	contact, err := ctrl.ContactService.GetContactByID(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching contact by ID")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact fetched successfully",
		"contact": contact,
	})
}

func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	var input UpdateContactInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	contact, err := ctrl.ContactService.UpdateContact(c.Context(), c.Params("id"), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating contact")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact updated successfully",
		"contact": contact,
	})
}

func (ctrl *ContactController) DeleteContact(c *fiber.Ctx) error {
	if err := ctrl.ContactService.DeleteContact(c.Context(), c.Params("id")); err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while deleting contact")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact deleted successfully",
	})
}
