package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

// ResultHandler handles exam result endpoints, including the public
// roll-number lookup.
type ResultHandler struct {
	results  *service.ResultService
	subjects *service.SubjectService
}

// NewResultHandler constructs a result handler.
func NewResultHandler(results *service.ResultService, subjects *service.SubjectService) *ResultHandler {
	return &ResultHandler{results: results, subjects: subjects}
}

// List godoc
// @Summary List results with computed summaries
// @Tags Results
// @Produce json
// @Param student_id query string false "Filter by student"
// @Param exam query string false "Filter by exam name"
// @Success 200 {object} response.Envelope
// @Router /results [get]
func (h *ResultHandler) List(c *gin.Context) {
	views, err := h.results.List(c.Request.Context(), c.Query("student_id"), c.Query("exam"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, nil)
}

// Create godoc
// @Summary Record result
// @Tags Results
// @Accept json
// @Produce json
// @Param payload body service.SaveResultRequest true "Result payload"
// @Success 201 {object} response.Envelope
// @Router /results [post]
func (h *ResultHandler) Create(c *gin.Context) {
	var req service.SaveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.results.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Update godoc
// @Summary Update result
// @Tags Results
// @Accept json
// @Produce json
// @Param id path string true "Result ID"
// @Param payload body service.UpdateResultRequest true "Result payload"
// @Success 200 {object} response.Envelope
// @Router /results/{id} [put]
func (h *ResultHandler) Update(c *gin.Context) {
	var req service.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.results.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Delete godoc
// @Summary Delete result
// @Tags Results
// @Produce json
// @Param id path string true "Result ID"
// @Success 204
// @Router /results/{id} [delete]
func (h *ResultHandler) Delete(c *gin.Context) {
	if err := h.results.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Lookup godoc
// @Summary Public result lookup by roll number
// @Description Returns a tagged outcome: found, no-student, or no-result
// @Tags Results
// @Produce json
// @Param roll query int true "Roll number"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /public/results/lookup [get]
func (h *ResultHandler) Lookup(c *gin.Context) {
	rollNo, err := strconv.Atoi(c.Query("roll"))
	if err != nil || rollNo < 1 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "roll must be a positive number"))
		return
	}
	lookup, err := h.results.LookupByRoll(c.Request.Context(), rollNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lookup, nil)
}

// Marksheet godoc
// @Summary Download result marksheet PDF
// @Tags Results
// @Produce application/pdf
// @Param id path string true "Result ID"
// @Success 200 {file} binary
// @Router /results/{id}/marksheet [get]
func (h *ResultHandler) Marksheet(c *gin.Context) {
	subjects, err := h.subjects.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	pdf, err := h.results.Marksheet(c.Request.Context(), c.Param("id"), subjects)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="marksheet.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
