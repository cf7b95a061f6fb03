package api

import (
	"net/http"

	"studiobook/internal/handler/httperr"
	"studiobook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	maintenance commands.MaintenanceCommands
}

func NewAdminHandler(maintenance commands.MaintenanceCommands) *AdminHandler {
	return &AdminHandler{maintenance: maintenance}
}

// @Summary Clean orphan records
// @Description Remove bookings and requests that reference missing users or studios
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.CleanOrphansReport
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/maintenance/clean-orphans [post]
func (h *AdminHandler) CleanOrphans(c *gin.Context) {
	report, err := h.maintenance.CleanOrphans(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Orphan cleanup failed", nil)
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Backfill slugs
// @Description Assign unique slugs to users and studios that lack one
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.BackfillReport
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/maintenance/backfill-slugs [post]
func (h *AdminHandler) BackfillSlugs(c *gin.Context) {
	report, err := h.maintenance.BackfillSlugs(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Slug backfill failed", nil)
		return
	}

	c.JSON(http.StatusOK, report)
}
