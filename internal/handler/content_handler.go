package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/catalog"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

// ContentHandler serves the public bilingual content catalog and the daily
// inspiration block.
type ContentHandler struct {
	inspiration *service.InspirationService
	dashboard   *service.DashboardService
}

// NewContentHandler constructs a content handler.
func NewContentHandler(inspiration *service.InspirationService, dashboard *service.DashboardService) *ContentHandler {
	return &ContentHandler{inspiration: inspiration, dashboard: dashboard}
}

// Institution godoc
// @Summary Institution contact block
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/institution [get]
func (h *ContentHandler) Institution(c *gin.Context) {
	response.JSON(c, http.StatusOK, catalog.Institution, nil)
}

// Teachers godoc
// @Summary Public teacher directory
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/teachers [get]
func (h *ContentHandler) Teachers(c *gin.Context) {
	response.JSON(c, http.StatusOK, catalog.Teachers, nil)
}

// Staff godoc
// @Summary Public staff directory
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/staff [get]
func (h *ContentHandler) Staff(c *gin.Context) {
	response.JSON(c, http.StatusOK, catalog.Staff, nil)
}

// Notices godoc
// @Summary Public notice board
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/notices [get]
func (h *ContentHandler) Notices(c *gin.Context) {
	response.JSON(c, http.StatusOK, catalog.Notices, nil)
}

// Gallery godoc
// @Summary Public photo gallery
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/gallery [get]
func (h *ContentHandler) Gallery(c *gin.Context) {
	response.JSON(c, http.StatusOK, catalog.Gallery, nil)
}

// Inspiration godoc
// @Summary Daily verse and dua
// @Description Always returns content; upstream failures degrade to a built-in fallback
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/inspiration [get]
func (h *ContentHandler) Inspiration(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.inspiration.Daily(c.Request.Context()), nil)
}

// Visit godoc
// @Summary Record a homepage visit
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/visit [post]
func (h *ContentHandler) Visit(c *gin.Context) {
	count := h.dashboard.RecordVisit(c.Request.Context())
	response.JSON(c, http.StatusOK, gin.H{"visitors": count}, nil)
}
