package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

// DonationRepository manages donation records. Donations are append-only
// apart from explicit deletes; there is no update path.
type DonationRepository struct {
	db *sqlx.DB
}

// NewDonationRepository constructs a DonationRepository.
func NewDonationRepository(db *sqlx.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// List returns all donations newest first.
func (r *DonationRepository) List(ctx context.Context) ([]models.Donation, error) {
	var donations []models.Donation
	const query = `SELECT id, donor_name, amount, purpose, date FROM donations ORDER BY date DESC, id DESC`
	if err := r.db.SelectContext(ctx, &donations, query); err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return donations, nil
}

// FindByID fetches one donation.
func (r *DonationRepository) FindByID(ctx context.Context, id string) (*models.Donation, error) {
	var donation models.Donation
	const query = `SELECT id, donor_name, amount, purpose, date FROM donations WHERE id = $1`
	if err := r.db.GetContext(ctx, &donation, query, id); err != nil {
		return nil, err
	}
	return &donation, nil
}

// Create inserts a donation.
func (r *DonationRepository) Create(ctx context.Context, donation *models.Donation) error {
	if donation.ID == "" {
		donation.ID = uuid.NewString()
	}
	if donation.Date.IsZero() {
		donation.Date = time.Now().UTC()
	}
	const query = `INSERT INTO donations (id, donor_name, amount, purpose, date)
        VALUES (:id, :donor_name, :amount, :purpose, :date)`
	if _, err := r.db.NamedExecContext(ctx, query, donation); err != nil {
		return fmt.Errorf("create donation: %w", err)
	}
	return nil
}

// Delete removes a donation.
func (r *DonationRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM donations WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete donation: %w", err)
	}
	return nil
}

// TotalAmount sums all donations.
func (r *DonationRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.GetContext(ctx, &total, "SELECT COALESCE(SUM(amount), 0) FROM donations"); err != nil {
		return 0, fmt.Errorf("total donations: %w", err)
	}
	return total, nil
}

// TotalSince sums donations dated at or after the given instant.
func (r *DonationRepository) TotalSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	if err := r.db.GetContext(ctx, &total, "SELECT COALESCE(SUM(amount), 0) FROM donations WHERE date >= $1", since); err != nil {
		return 0, fmt.Errorf("total donations since: %w", err)
	}
	return total, nil
}
