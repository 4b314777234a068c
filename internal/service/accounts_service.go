package service

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/export"
)

type incomeRepo interface {
	List(ctx context.Context) ([]models.Income, error)
	Create(ctx context.Context, income *models.Income) error
	Delete(ctx context.Context, id string) error
	TotalAmount(ctx context.Context) (float64, error)
}

type expenseRepo interface {
	List(ctx context.Context) ([]models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id string) error
	TotalAmount(ctx context.Context) (float64, error)
}

type donationTotals interface {
	TotalAmount(ctx context.Context) (float64, error)
	TotalSince(ctx context.Context, since time.Time) (float64, error)
}

// CreateIncomeRequest holds the payload for a manual income entry.
type CreateIncomeRequest struct {
	SourceEn    string    `json:"source_en" validate:"required"`
	SourceBn    string    `json:"source_bn" validate:"required"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Date        time.Time `json:"date"`
}

// CreateExpenseRequest holds the payload for an expense entry.
type CreateExpenseRequest struct {
	CategoryEn  string    `json:"category_en" validate:"required"`
	CategoryBn  string    `json:"category_bn" validate:"required"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Date        time.Time `json:"date"`
}

// AccountsService manages manual income and expense entries and the combined
// financial summary. Donation-derived income entries are owned by the
// reconciler; this service only reads them as part of the ledger.
type AccountsService struct {
	incomes   incomeRepo
	expenses  expenseRepo
	donations donationTotals
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAccountsService constructs AccountsService.
func NewAccountsService(incomes incomeRepo, expenses expenseRepo, donations donationTotals, validate *validator.Validate, logger *zap.Logger) *AccountsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountsService{incomes: incomes, expenses: expenses, donations: donations, validator: validate, logger: logger}
}

// ListIncomes returns the full ledger, manual and derived, newest first.
func (s *AccountsService) ListIncomes(ctx context.Context) ([]models.Income, error) {
	incomes, err := s.incomes.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list incomes")
	}
	return incomes, nil
}

// CreateIncome records a manual income entry.
func (s *AccountsService) CreateIncome(ctx context.Context, req CreateIncomeRequest) (*models.Income, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid income payload")
	}
	income := &models.Income{
		Source:      models.LocalizedText{En: req.SourceEn, Bn: req.SourceBn},
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}
	if err := s.incomes.Create(ctx, income); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create income")
	}
	return income, nil
}

// DeleteIncome removes a manual income entry. Derived entries cannot be
// deleted here; they disappear only when their donation does.
func (s *AccountsService) DeleteIncome(ctx context.Context, id string) error {
	if err := s.incomes.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete income")
	}
	return nil
}

// ListExpenses returns all expense entries newest first.
func (s *AccountsService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list expenses")
	}
	return expenses, nil
}

// CreateExpense records an expense entry.
func (s *AccountsService) CreateExpense(ctx context.Context, req CreateExpenseRequest) (*models.Expense, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid expense payload")
	}
	expense := &models.Expense{
		Category:    models.LocalizedText{En: req.CategoryEn, Bn: req.CategoryBn},
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create expense")
	}
	return expense, nil
}

// DeleteExpense removes an expense entry.
func (s *AccountsService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete expense")
	}
	return nil
}

// Summary aggregates the ledger into the figures the accounts view shows.
func (s *AccountsService) Summary(ctx context.Context) (*models.FinanceSummary, error) {
	totalIncome, err := s.incomes.TotalAmount(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to total incomes")
	}
	totalExpenses, err := s.expenses.TotalAmount(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to total expenses")
	}
	totalDonations, err := s.donations.TotalAmount(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to total donations")
	}
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthDonations, err := s.donations.TotalSince(ctx, monthStart)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to total recent donations")
	}
	return &models.FinanceSummary{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		Balance:            totalIncome - totalExpenses,
		TotalDonations:     totalDonations,
		DonationsThisMonth: monthDonations,
	}, nil
}

// ExportStatementPDF renders the full ledger and summary as a PDF statement.
func (s *AccountsService) ExportStatementPDF(ctx context.Context) ([]byte, error) {
	incomes, err := s.ListIncomes(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{Headers: []string{"Date", "Type", "Detail", "Amount"}}
	for _, income := range incomes {
		data.Rows = append(data.Rows, []string{
			income.Date.Format("2006-01-02"),
			"Income",
			income.Source.En,
			strconv.FormatFloat(income.Amount, 'f', 2, 64),
		})
	}
	for _, expense := range expenses {
		data.Rows = append(data.Rows, []string{
			expense.Date.Format("2006-01-02"),
			"Expense",
			expense.Category.En,
			strconv.FormatFloat(expense.Amount, 'f', 2, 64),
		})
	}
	data.Rows = append(data.Rows,
		[]string{"", "Total Income", "", strconv.FormatFloat(summary.TotalIncome, 'f', 2, 64)},
		[]string{"", "Total Expenses", "", strconv.FormatFloat(summary.TotalExpenses, 'f', 2, 64)},
		[]string{"", "Balance", "", strconv.FormatFloat(summary.Balance, 'f', 2, 64)},
	)

	subtitle := "As of " + time.Now().UTC().Format("2006-01-02")
	pdf, err := export.NewPDFExporter().Render(data, "Financial Statement", subtitle)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render statement")
	}
	return pdf, nil
}
