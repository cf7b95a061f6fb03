package api

import (
	"net/http"
	"strconv"

	resdto "studiobook/internal/handler/dto/response"
	"studiobook/internal/handler/httperr"
	"studiobook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultTopStudioLimit = 10

type StudioHandler struct {
	queries queries.StudioQueries
}

func NewStudioHandler(qrs queries.StudioQueries) *StudioHandler {
	return &StudioHandler{queries: qrs}
}

// @Summary List studios
// @Description Studio directory with duplicates collapsed and follower counts
// @Tags studios
// @Produce json
// @Success 200 {object} resdto.StudioListResponse
// @Router /studios [get]
func (h *StudioHandler) ListStudios(c *gin.Context) {
	studios, err := h.queries.ListStudios(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load studios", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.StudioListResponse{Studios: studios})
}

// @Summary Top followed studios
// @Description Studios ordered by follower count
// @Tags studios
// @Produce json
// @Param limit query int false "Maximum studios to return" default(10)
// @Success 200 {object} resdto.StudioListResponse
// @Failure 400 {object} map[string]string
// @Router /studios/top [get]
func (h *StudioHandler) TopFollowed(c *gin.Context) {
	limit := defaultTopStudioLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	studios, err := h.queries.TopFollowed(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load studios", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.StudioListResponse{Studios: studios})
}
