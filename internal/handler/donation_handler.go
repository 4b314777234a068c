package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

// DonationHandler handles donation endpoints.
type DonationHandler struct {
	service *service.DonationService
}

// NewDonationHandler constructs a donation handler.
func NewDonationHandler(svc *service.DonationService) *DonationHandler {
	return &DonationHandler{service: svc}
}

// List godoc
// @Summary List donations
// @Tags Donations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /donations [get]
func (h *DonationHandler) List(c *gin.Context) {
	donations, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, donations, nil)
}

// Create godoc
// @Summary Record donation
// @Description Records a donation and synchronously projects it into the income ledger
// @Tags Donations
// @Accept json
// @Produce json
// @Param payload body service.CreateDonationRequest true "Donation payload"
// @Success 201 {object} response.Envelope
// @Router /donations [post]
func (h *DonationHandler) Create(c *gin.Context) {
	var req service.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	donation, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, donation)
}

// Delete godoc
// @Summary Delete donation
// @Description Removes a donation and its derived income ledger entry
// @Tags Donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 204
// @Router /donations/{id} [delete]
func (h *DonationHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ExportCSV godoc
// @Summary Download donations as CSV
// @Tags Donations
// @Produce text/csv
// @Success 200 {file} binary
// @Router /donations/export [get]
func (h *DonationHandler) ExportCSV(c *gin.Context) {
	csv, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="donations.csv"`)
	c.Data(http.StatusOK, "text/csv", csv)
}
