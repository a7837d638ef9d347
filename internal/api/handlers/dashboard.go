package handlers

import (
	"net/http"

	"fleet-admin/internal/services"
	"fleet-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute dashboard stats", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
