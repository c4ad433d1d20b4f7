package backenduser

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BackendUserController struct {
	UserService BackendUserService
	Logger      *zap.Logger
}

func NewBackendUserController(userService BackendUserService, logger *zap.Logger) *BackendUserController {
	return &BackendUserController{
		UserService: userService,
		Logger:      logger,
	}
}

func (ctrl *BackendUserController) CreateBackendUser(c *fiber.Ctx) error {
	var input CreateBackendUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	user, err := ctrl.UserService.CreateBackendUser(c.Context(), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while creating backend user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Backend user created successfully",
		"user":    user,
	})
}

func (ctrl *BackendUserController) ListBackendUsers(c *fiber.Ctx) error {
	var filter BackendUserFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	users, total, err := ctrl.UserService.ListBackendUsers(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching backend users")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Backend users fetched successfully",
		"total":   total,
		"users":   users,
	})
}

func (ctrl *BackendUserController) GetBackendUser(c *fiber.Ctx) error {
	user, err := ctrl.UserService.GetBackendUserByID(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching backend user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Backend user fetched successfully",
		"user":    user,
	})
}

func (ctrl *BackendUserController) UpdateBackendUser(c *fiber.Ctx) error {
	var input UpdateBackendUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	user, err := ctrl.UserService.UpdateBackendUser(c.Context(), c.Params("id"), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating backend user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Backend user updated successfully",
		"user":    user,
	})
}

func (ctrl *BackendUserController) DeleteBackendUser(c *fiber.Ctx) error {
	if err := ctrl.UserService.DeleteBackendUser(c.Context(), c.Params("id")); err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while deleting backend user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Backend user deleted successfully",
	})
}
