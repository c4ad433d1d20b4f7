package childissue

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChildIssueController struct {
	ChildIssueService ChildIssueService
	Logger            *zap.Logger
}

func NewChildIssueController(childIssueService ChildIssueService, logger *zap.Logger) *ChildIssueController {
	return &ChildIssueController{
		ChildIssueService: childIssueService,
		Logger:            logger,
	}
}

func (ctrl *ChildIssueController) CreateChildIssue(c *fiber.Ctx) error {
	var input CreateChildIssueInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	issue, err := ctrl.ChildIssueService.CreateChildIssue(c.Context(), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while creating child issue")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Child issue created successfully",
		"childIssue": issue,
	})
}

func (ctrl *ChildIssueController) ListChildIssues(c *fiber.Ctx) error {
	var filter ChildIssueFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	issues, total, err := ctrl.ChildIssueService.ListChildIssues(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching child issues")
	}
	if issues == nil {
		issues = []ChildIssue{}
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Child issues fetched successfully",
		"total":       total,
		"childIssues": issues,
	})
}

func (ctrl *ChildIssueController) GetChildIssue(c *fiber.Ctx) error {
	issue, err := ctrl.ChildIssueService.GetChildIssueByID(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching child issue")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Child issue fetched successfully",
		"childIssue": issue,
	})
}

func (ctrl *ChildIssueController) UpdateChildIssue(c *fiber.Ctx) error {
	var input UpdateChildIssueInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	issue, err := ctrl.ChildIssueService.UpdateChildIssue(c.Context(), c.Params("id"), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating child issue")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Child issue updated successfully",
		"childIssue": issue,
	})
}

func (ctrl *ChildIssueController) DeleteChildIssue(c *fiber.Ctx) error {
	if err := ctrl.ChildIssueService.DeleteChildIssue(c.Context(), c.Params("id")); err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while deleting child issue")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Child issue deleted successfully",
	})
}
