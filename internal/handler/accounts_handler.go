package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

// AccountsHandler handles income, expense and summary endpoints.
type AccountsHandler struct {
	service *service.AccountsService
}

// NewAccountsHandler constructs an accounts handler.
func NewAccountsHandler(svc *service.AccountsService) *AccountsHandler {
	return &AccountsHandler{service: svc}
}

// ListIncomes godoc
// @Summary List income ledger
// @Description Returns manual and donation-derived income entries newest first
// @Tags Accounts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /accounts/incomes [get]
func (h *AccountsHandler) ListIncomes(c *gin.Context) {
	incomes, err := h.service.ListIncomes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, incomes, nil)
}

// CreateIncome godoc
// @Summary Record manual income
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body service.CreateIncomeRequest true "Income payload"
// @Success 201 {object} response.Envelope
// @Router /accounts/incomes [post]
func (h *AccountsHandler) CreateIncome(c *gin.Context) {
	var req service.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	income, err := h.service.CreateIncome(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, income)
}

// DeleteIncome godoc
// @Summary Delete manual income entry
// @Tags Accounts
// @Produce json
// @Param id path string true "Income ID"
// @Success 204
// @Router /accounts/incomes/{id} [delete]
func (h *AccountsHandler) DeleteIncome(c *gin.Context) {
	if err := h.service.DeleteIncome(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListExpenses godoc
// @Summary List expenses
// @Tags Accounts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /accounts/expenses [get]
func (h *AccountsHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.service.ListExpenses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, expenses, nil)
}

// CreateExpense godoc
// @Summary Record expense
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body service.CreateExpenseRequest true "Expense payload"
// @Success 201 {object} response.Envelope
// @Router /accounts/expenses [post]
func (h *AccountsHandler) CreateExpense(c *gin.Context) {
	var req service.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	expense, err := h.service.CreateExpense(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, expense)
}

// DeleteExpense godoc
// @Summary Delete expense entry
// @Tags Accounts
// @Produce json
// @Param id path string true "Expense ID"
// @Success 204
// @Router /accounts/expenses/{id} [delete]
func (h *AccountsHandler) DeleteExpense(c *gin.Context) {
	if err := h.service.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ExportStatement godoc
// @Summary Download financial statement PDF
// @Tags Accounts
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /accounts/statement [get]
func (h *AccountsHandler) ExportStatement(c *gin.Context) {
	pdf, err := h.service.ExportStatementPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="statement.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Summary godoc
// @Summary Financial summary
// @Tags Accounts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /accounts/summary [get]
func (h *AccountsHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}
