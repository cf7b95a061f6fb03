package api

import (
	"net/http"

	resdto "studiobook/internal/handler/dto/response"
	"studiobook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	queries queries.BookingQueries
}

func NewDashboardHandler(qrs queries.BookingQueries) *DashboardHandler {
	return &DashboardHandler{queries: qrs}
}

// @Summary Studio dashboard
// @Description Partitioned bookings, current-month revenue and follower count
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param studioId query string true "Studio ID"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /studio/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	studioID := c.Query("studioId")
	if studioID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "studioId query parameter required",
		})
		return
	}

	dashboard, err := h.queries.Dashboard(c.Request.Context(), studioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboard(dashboard))
}
