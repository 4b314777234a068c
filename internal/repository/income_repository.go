package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

// IncomeRepository manages the income ledger. Manual entries are created
// directly; derived entries are rebuilt wholesale by ReplaceDerived whenever
// the donation collection changes.
type IncomeRepository struct {
	db *sqlx.DB
}

// NewIncomeRepository constructs an IncomeRepository.
func NewIncomeRepository(db *sqlx.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

const incomeColumns = `id, source, description, amount, date, donation_id`

// List returns all income entries newest first.
func (r *IncomeRepository) List(ctx context.Context) ([]models.Income, error) {
	var incomes []models.Income
	query := fmt.Sprintf("SELECT %s FROM incomes ORDER BY date DESC, id DESC", incomeColumns)
	if err := r.db.SelectContext(ctx, &incomes, query); err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	return incomes, nil
}

// ListManual returns only the manually entered income entries.
func (r *IncomeRepository) ListManual(ctx context.Context) ([]models.Income, error) {
	var incomes []models.Income
	query := fmt.Sprintf("SELECT %s FROM incomes WHERE donation_id IS NULL ORDER BY date DESC, id DESC", incomeColumns)
	if err := r.db.SelectContext(ctx, &incomes, query); err != nil {
		return nil, fmt.Errorf("list manual incomes: %w", err)
	}
	return incomes, nil
}

// Create inserts a manual income entry.
func (r *IncomeRepository) Create(ctx context.Context, income *models.Income) error {
	if income.ID == "" {
		income.ID = uuid.NewString()
	}
	if income.Date.IsZero() {
		income.Date = time.Now().UTC()
	}
	const query = `INSERT INTO incomes (id, source, description, amount, date, donation_id)
        VALUES (:id, :source, :description, :amount, :date, :donation_id)`
	if _, err := r.db.NamedExecContext(ctx, query, income); err != nil {
		return fmt.Errorf("create income: %w", err)
	}
	return nil
}

// ReplaceDerived swaps the full set of donation-derived entries in a single
// transaction. Manual entries are untouched by construction: the delete
// matches only rows with a donation provenance.
func (r *IncomeRepository) ReplaceDerived(ctx context.Context, derived []models.Income) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin derived replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM incomes WHERE donation_id IS NOT NULL"); err != nil {
		return fmt.Errorf("clear derived incomes: %w", err)
	}
	const query = `INSERT INTO incomes (id, source, description, amount, date, donation_id)
        VALUES (:id, :source, :description, :amount, :date, :donation_id)`
	for i := range derived {
		if _, err := tx.NamedExecContext(ctx, query, derived[i]); err != nil {
			return fmt.Errorf("insert derived income %s: %w", derived[i].ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit derived replace: %w", err)
	}
	return nil
}

// Delete removes a manual income entry. Derived entries are managed solely
// through ReplaceDerived.
func (r *IncomeRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM incomes WHERE id = $1 AND donation_id IS NULL", id); err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	return nil
}

// TotalAmount sums the full ledger, manual and derived.
func (r *IncomeRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.GetContext(ctx, &total, "SELECT COALESCE(SUM(amount), 0) FROM incomes"); err != nil {
		return 0, fmt.Errorf("total incomes: %w", err)
	}
	return total, nil
}
