package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-admin/internal/common/apperror"
	"go-admin/internal/common/models"
	"go-admin/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	contexts map[string]*models.AuthContext
}

func (f *fakeResolver) ResolveAuthContext(ctx context.Context, userID string) (*models.AuthContext, error) {
	if authCtx, ok := f.contexts[userID]; ok {
		return authCtx, nil
	}
	return nil, apperror.NotFound("Backend user not found")
}

func newAuthFixture(permissions models.PermissionMap) (*fiber.App, *utils.JWTManager, string) {
	jwt := utils.NewJWTManager("test-secret", time.Hour)
	resolver := &fakeResolver{contexts: map[string]*models.AuthContext{
		"user-1": {
			UserID:      "user-1",
			Name:        "Test User",
			Email:       "test@example.com",
			Role:        "Tester",
			Permissions: permissions,
		},
	}}
	auth := NewAuthMiddleware(jwt, resolver)

	app := fiber.New()
	app.Get("/guarded",
		auth.Handler(),
		RequirePermission(models.CategoryBooking, ActionEdit),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"success": true})
		},
	)

	token, _ := jwt.GenerateToken("user-1", "test@example.com", "Tester")
	return app, jwt, token
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app, _, _ := newAuthFixture(models.PermissionMap{})

	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app, _, token := newAuthFixture(models.PermissionMap{})

	resp := doRequest(t, app, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	app, _, _ := newAuthFixture(models.PermissionMap{})

	resp := doRequest(t, app, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareUnknownUser(t *testing.T) {
	app, jwt, _ := newAuthFixture(models.PermissionMap{})

	token, err := jwt.GenerateToken("deleted-user", "gone@example.com", "Tester")
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequirePermissionDeniesBelowThreshold(t *testing.T) {
	app, _, token := newAuthFixture(models.PermissionMap{
		BookingManagement: models.LevelView,
	})

	resp := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequirePermissionAllowsAtThreshold(t *testing.T) {
	app, _, token := newAuthFixture(models.PermissionMap{
		BookingManagement: models.LevelEdit,
	})

	resp := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermissionHigherLevelImpliesLower(t *testing.T) {
	app, _, token := newAuthFixture(models.PermissionMap{
		BookingManagement: models.LevelAll,
	})

	resp := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermissionOtherCategoryIrrelevant(t *testing.T) {
	app, _, token := newAuthFixture(models.PermissionMap{
		BlogManagement: models.LevelAll,
	})

	resp := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
