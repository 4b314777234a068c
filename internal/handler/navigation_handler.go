package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

// NavigationHandler exposes the section permissions the admin shell renders
// its menu from.
type NavigationHandler struct {
	access *service.AccessService
}

// NewNavigationHandler constructs a navigation handler.
func NewNavigationHandler(access *service.AccessService) *NavigationHandler {
	return &NavigationHandler{access: access}
}

type navigationResponse struct {
	Sections       []models.Section `json:"sections"`
	DefaultSection models.Section   `json:"default_section"`
	ActiveSection  models.Section   `json:"active_section"`
}

// Sections godoc
// @Summary List permitted sections
// @Description Returns the sections the caller's role may open, the default landing section, and the resolved active section
// @Tags Navigation
// @Produce json
// @Param active query string false "Currently open section to reconcile"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /navigation/sections [get]
func (h *NavigationHandler) Sections(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	current := models.Section(c.Query("active"))
	res := navigationResponse{
		Sections:       h.access.AllowedSections(claims.Role),
		DefaultSection: h.access.DefaultSection(claims.Role),
		ActiveSection:  h.access.ResolveActive(claims.Role, current),
	}
	response.JSON(c, http.StatusOK, res, nil)
}
