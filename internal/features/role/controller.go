package role

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RoleController struct {
	RoleService RoleService
	Logger      *zap.Logger
}

func NewRoleController(roleService RoleService, logger *zap.Logger) *RoleController {
	return &RoleController{
		RoleService: roleService,
		Logger:      logger,
	}
}

// CreateRole godoc
// @Summary      Create a role with its permission levels
// @Tags         role-permission
// @Accept       json
// @Produce      json
// @Param        input body CreateRoleInput true "Role Input"
// @Success      201 {object} Role
// @Router       /api/admin/role-permission [post]
func (ctrl *RoleController) CreateRole(c *fiber.Ctx) error {
	var input CreateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	role, err := ctrl.RoleService.CreateRole(c.Context(), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while creating role")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "New role created successfully",
		"role":    role,
	})
}

func (ctrl *RoleController) ListRoles(c *fiber.Ctx) error {
	var filter RoleFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	roles, total, err := ctrl.RoleService.ListRoles(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching roles")
	}
	if roles == nil {
		roles = []Role{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Roles fetched successfully",
		"total":   total,
		"roles":   roles,
	})
}

func (ctrl *RoleController) GetRole(c *fiber.Ctx) error {
	role, err := ctrl.RoleService.GetRoleByID(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching role by ID")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Role fetched successfully",
		"role":    role,
	})
}

func (ctrl *RoleController) UpdateRole(c *fiber.Ctx) error {
	var input UpdateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	role, err := ctrl.RoleService.UpdateRole(c.Context(), c.Params("id"), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating role")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Role updated successfully",
		"role":    role,
	})
}

func (ctrl *RoleController) DeleteRole(c *fiber.Ctx) error {
	if err := ctrl.RoleService.DeleteRole(c.Context(), c.Params("id")); err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while deleting role")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Role deleted successfully",
	})
}
