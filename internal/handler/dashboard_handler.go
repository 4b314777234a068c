package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

// DashboardHandler serves aggregate statistics for the landing section.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Stats godoc
// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, cached, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil, map[string]interface{}{"cache_hit": cached})
}
