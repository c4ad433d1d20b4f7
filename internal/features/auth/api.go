package auth

import (
	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
}

func NewAuthApi(controller *AuthController) *AuthApi {
	return &AuthApi{
		controller: controller,
	}
}

// Setup registers the only unauthenticated route
func (h *AuthApi) Setup(app *fiber.App) {
	app.Post("/api/admin/auth/login", h.controller.Login)
}
