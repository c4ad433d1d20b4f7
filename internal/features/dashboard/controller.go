package dashboard

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardController struct {
	DashboardService DashboardService
	Logger           *zap.Logger
}

func NewDashboardController(dashboardService DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		Logger:           logger,
	}
}

func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	counts, err := ctrl.DashboardService.GetCounts(c.Context())
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching dashboard data")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Dashboard data fetched successfully",
		"counts":  counts,
	})
}
