package middleware

import (
	"context"

	"go-admin/internal/common/models"
	"go-admin/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// UserResolver looks up the identity behind a validated token. The lookup is
// fresh on every request so role changes and deletions take effect without
// waiting for token expiry.
type UserResolver interface {
	ResolveAuthContext(ctx context.Context, userID string) (*models.AuthContext, error)
}

// AuthMiddleware validates session tokens and injects the resolved
// AuthContext into the request locals.
type AuthMiddleware struct {
	jwt      *utils.JWTManager
	resolver UserResolver
}

func NewAuthMiddleware(jwt *utils.JWTManager, resolver UserResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwt:      jwt,
		resolver: resolver,
	}
}

func (m *AuthMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "No token provided, access denied",
			})
		}

		// Extract token from "Bearer <token>"
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid authorization header format",
			})
		}

		claims, err := m.jwt.ValidateToken(authHeader[7:])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		// Stale token claims are not trusted for the role: re-resolve the
		// identity and its permission map from the store. The blocked flag is
		// checked at login only; an already-issued token stays valid for a
		// blocked identity until it expires.
		authCtx, err := m.resolver.ResolveAuthContext(c.Context(), claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "User not found or deleted",
			})
		}

		c.Locals(models.AuthUserKey, authCtx)
		return c.Next()
	}
}

// AuthUser returns the AuthContext placed in locals by the auth middleware,
// or nil when the request skipped it.
func AuthUser(c *fiber.Ctx) *models.AuthContext {
	authCtx, _ := c.Locals(models.AuthUserKey).(*models.AuthContext)
	return authCtx
}
