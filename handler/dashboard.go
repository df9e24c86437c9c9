package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchenops/controller"
)

type DashboardHandler interface {
	Stats(c *gin.Context)
}

type dashboardHandler struct {
	statsController controller.StatsController
}

func NewDashboardHandler(statsController controller.StatsController) DashboardHandler {
	return &dashboardHandler{
		statsController: statsController,
	}
}

// Stats returns the four dashboard counters.
func (h *dashboardHandler) Stats(c *gin.Context) {
	stats, err := h.statsController.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
