package program

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProgramController struct {
	ProgramService ProgramService
	Logger         *zap.Logger
}

func NewProgramController(programService ProgramService, logger *zap.Logger) *ProgramController {
	return &ProgramController{
		ProgramService: programService,
		Logger:         logger,
	}
}

func (ctrl *ProgramController) CreateProgram(c *fiber.Ctx) error {
	var input CreateProgramInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	program, err := ctrl.ProgramService.CreateProgram(c.Context(), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while creating program")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Program created successfully",
		"program": program,
	})
}

func (ctrl *ProgramController) ListPrograms(c *fiber.Ctx) error {
	var filter ProgramFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	programs, total, err := ctrl.ProgramService.ListPrograms(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching programs")
	}
	if programs == nil {
		programs = []Program{}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Programs fetched successfully",
		"total":    total,
		"programs": programs,
	})
}

func (ctrl *ProgramController) GetProgram(c *fiber.Ctx) error {
	program, err := ctrl.ProgramService.GetProgramByID(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching program")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Program fetched successfully",
		"program": program,
	})
}

func (ctrl *ProgramController) UpdateProgram(c *fiber.Ctx) error {
	var input UpdateProgramInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	program, err := ctrl.ProgramService.UpdateProgram(c.Context(), c.Params("id"), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating program")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Program updated successfully",
		"program": program,
	})
}

func (ctrl *ProgramController) DeleteProgram(c *fiber.Ctx) error {
	if err := ctrl.ProgramService.DeleteProgram(c.Context(), c.Params("id")); err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while deleting program")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Program deleted successfully",
	})
}
