package auth

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService AuthService
	Logger      *zap.Logger
}

func NewAuthController(authService AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{
		AuthService: authService,
		Logger:      logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      Login a backend user
// @Description  Exchanges credentials for a session token and the resolved permission map
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginRequest true "Login Input"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {string} string "Invalid email or password"
// @Failure      403 {string} string "User is blocked"
// @Router       /api/admin/auth/login [post]
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	result, err := ctrl.AuthService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while logging in")
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"message":           "Login successful",
		"token":             result.Token,
		"user":              result.User,
		"roleAndPermission": result.Role,
	})
}
