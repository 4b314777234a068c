package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

// ExpenseRepository manages expense records.
type ExpenseRepository struct {
	db *sqlx.DB
}

// NewExpenseRepository constructs an ExpenseRepository.
func NewExpenseRepository(db *sqlx.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// List returns all expenses newest first.
func (r *ExpenseRepository) List(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	const query = `SELECT id, category, description, amount, date FROM expenses ORDER BY date DESC, id DESC`
	if err := r.db.SelectContext(ctx, &expenses, query); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Create inserts an expense.
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now().UTC()
	}
	const query = `INSERT INTO expenses (id, category, description, amount, date)
        VALUES (:id, :category, :description, :amount, :date)`
	if _, err := r.db.NamedExecContext(ctx, query, expense); err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// Delete removes an expense.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// TotalAmount sums all expenses.
func (r *ExpenseRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.GetContext(ctx, &total, "SELECT COALESCE(SUM(amount), 0) FROM expenses"); err != nil {
		return 0, fmt.Errorf("total expenses: %w", err)
	}
	return total, nil
}
