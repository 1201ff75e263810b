package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fortnight/internal/services"
)

// DashboardHandler handles the landing page aggregate.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles fetching the dashboard aggregate.
// @Summary     Get the dashboard
// @Description Get current period metrics, accounts, recent activity, upcoming bills, and net worth
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.GetDashboard()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
