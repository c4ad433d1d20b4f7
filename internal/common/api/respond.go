package api

import (
	"go-admin/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Fail translates a service error into the response envelope. Unexpected
// errors become the fallback server-error message; full detail goes to the
// log only.
func Fail(c *fiber.Ctx, log *zap.Logger, err error, fallback string) error {
	appErr := apperror.FromError(err, fallback)

	body := fiber.Map{
		"success": false,
		"message": appErr.Message,
	}
	if appErr.Err != nil {
		if log != nil {
			log.Error(fallback, zap.Error(err))
		}
		body["error"] = appErr.Err.Error()
	}

	return c.Status(appErr.Status).JSON(body)
}
