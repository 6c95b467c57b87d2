package controllers

import (
	"github.com/gin-gonic/gin"

	"oneconversion/internal/services"
	"oneconversion/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetReport godoc
// @Summary Aggregate sales report for the admin dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (d *DashboardController) GetReport(c *gin.Context) {
	report, err := d.dashboardService.GetReport(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "")
}
