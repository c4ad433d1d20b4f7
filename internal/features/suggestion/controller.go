package suggestion

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SuggestionController struct {
	SuggestionService SuggestionService
	Logger            *zap.Logger
}

func NewSuggestionController(suggestionService SuggestionService, logger *zap.Logger) *SuggestionController {
	return &SuggestionController{
		SuggestionService: suggestionService,
		Logger:            logger,
	}
}

func (ctrl *SuggestionController) CreateSuggestion(c *fiber.Ctx) error {
	var input CreateSuggestionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	suggestion, err := ctrl.SuggestionService.CreateSuggestion(c.Context(), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while creating suggestion")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Suggestion created successfully",
		"suggestion": suggestion,
	})
}

func (ctrl *SuggestionController) ListSuggestions(c *fiber.Ctx) error {
	var filter SuggestionFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	suggestions, total, err := ctrl.SuggestionService.ListSuggestions(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching suggestions")
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Suggestions fetched successfully",
		"total":       total,
		"suggestions": suggestions,
	})
}

func (ctrl *SuggestionController) GetSuggestion(c *fiber.Ctx) error {
	suggestion, err := ctrl.SuggestionService.GetSuggestionByID(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching suggestion by ID")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Suggestion fetched successfully",
		"suggestion": suggestion,
	})
}

func (ctrl *SuggestionController) UpdateSuggestion(c *fiber.Ctx) error {
	var input UpdateSuggestionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	suggestion, err := ctrl.SuggestionService.UpdateSuggestion(c.Context(), c.Params("id"), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating suggestion")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Suggestion updated successfully",
		"suggestion": suggestion,
	})
}

func (ctrl *SuggestionController) DeleteSuggestion(c *fiber.Ctx) error {
	if err := ctrl.SuggestionService.DeleteSuggestion(c.Context(), c.Params("id")); err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while deleting suggestion")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Suggestion deleted successfully",
	})
}
