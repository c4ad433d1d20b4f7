package middleware

import (
	"go-admin/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

// Action names the kind of access a route needs within its category.
type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionAll    Action = "all"
)

// RequirePermission gates a route on the caller's permission level for a
// resource category: view>=1, edit>=2, delete>=3, all=4.
func RequirePermission(category string, action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx := AuthUser(c)
		if authCtx == nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Access denied: no permissions resolved",
			})
		}

		actions := models.VisibleActions(authCtx.Permissions.Level(category))

		allowed := false
		switch action {
		case ActionView:
			allowed = actions.CanView
		case ActionEdit:
			allowed = actions.CanEdit
		case ActionDelete:
			allowed = actions.CanDelete
		case ActionAll:
			allowed = actions.CanAll
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Access denied: Insufficient permissions for this action",
			})
		}

		return c.Next()
	}
}
