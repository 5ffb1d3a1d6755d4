package controllers

import (
	"easygames/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService *services.DashboardService
}

func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Admin dashboard
// @Description Get entity totals and the low-stock list (Admin)
// @Tags Admin - Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	overview, err := ctrl.dashboardService.Overview(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load dashboard"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved successfully",
		"data":    overview,
	})
}
