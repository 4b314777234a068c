package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/export"
)

// ledgerNamespace seeds the deterministic ids of donation-derived income
// entries. Deriving the same donation always yields the same id, and v5 ids
// cannot collide with the v4 ids of manual entries.
var ledgerNamespace = uuid.MustParse("8f3c1d9a-5b2e-4a47-9c31-d2a6f08e7b54")

// donationSource is the fixed bilingual label stamped on derived entries.
var donationSource = models.LocalizedText{En: "Donation", Bn: "দান"}

// DeriveIncome produces the income ledger projection of one donation.
func DeriveIncome(donation models.Donation) models.Income {
	donationID := donation.ID
	return models.Income{
		ID:          uuid.NewSHA1(ledgerNamespace, []byte(donation.ID)).String(),
		Source:      donationSource,
		Description: fmt.Sprintf("From %s for %s", donation.DonorName, donation.Purpose),
		Amount:      donation.Amount,
		Date:        donation.Date,
		DonationID:  &donationID,
	}
}

// ReconcileLedger rebuilds the income collection from the current donations:
// manual entries pass through untouched, every donation contributes exactly
// one freshly derived entry, and the result is sorted newest first. The
// function is pure and idempotent; running it twice with unchanged donations
// yields an identical collection.
func ReconcileLedger(donations []models.Donation, incomes []models.Income) []models.Income {
	merged := make([]models.Income, 0, len(incomes)+len(donations))
	for _, income := range incomes {
		if !income.Derived() {
			merged = append(merged, income)
		}
	}
	for _, donation := range donations {
		merged = append(merged, DeriveIncome(donation))
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.After(merged[j].Date)
		}
		return merged[i].ID > merged[j].ID
	})
	return merged
}

type donationRepo interface {
	List(ctx context.Context) ([]models.Donation, error)
	FindByID(ctx context.Context, id string) (*models.Donation, error)
	Create(ctx context.Context, donation *models.Donation) error
	Delete(ctx context.Context, id string) error
}

type derivedIncomeWriter interface {
	ReplaceDerived(ctx context.Context, derived []models.Income) error
}

// CreateDonationRequest holds the payload for recording a donation.
type CreateDonationRequest struct {
	DonorName string  `json:"donor_name" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Purpose   string  `json:"purpose"`
}

// DonationService records donations and keeps the income ledger in sync. The
// derived-income projection re-runs synchronously on every change, before the
// call returns, so no reader ever observes a ledger stale relative to the
// donation list.
type DonationService struct {
	donations donationRepo
	incomes   derivedIncomeWriter
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewDonationService constructs DonationService.
func NewDonationService(donations donationRepo, incomes derivedIncomeWriter, validate *validator.Validate, logger *zap.Logger) *DonationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DonationService{donations: donations, incomes: incomes, validator: validate, logger: logger}
}

// WithMetrics attaches resync instrumentation.
func (s *DonationService) WithMetrics(metrics *MetricsService) *DonationService {
	s.metrics = metrics
	return s
}

// List returns all donations newest first.
func (s *DonationService) List(ctx context.Context) ([]models.Donation, error) {
	donations, err := s.donations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list donations")
	}
	return donations, nil
}

// Create records a donation and resyncs the derived ledger entries.
func (s *DonationService) Create(ctx context.Context, req CreateDonationRequest) (*models.Donation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid donation payload")
	}
	purpose := req.Purpose
	if purpose == "" {
		purpose = "General"
	}
	donation := &models.Donation{
		DonorName: req.DonorName,
		Amount:    req.Amount,
		Purpose:   purpose,
		Date:      time.Now().UTC(),
	}
	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create donation")
	}
	if err := s.resync(ctx); err != nil {
		return nil, err
	}
	return donation, nil
}

// Delete removes a donation together with its sole derived ledger entry.
func (s *DonationService) Delete(ctx context.Context, id string) error {
	if _, err := s.donations.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "donation not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load donation")
	}
	if err := s.donations.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete donation")
	}
	return s.resync(ctx)
}

// Resync rebuilds the derived entries from the current donation list. Exposed
// for startup reconciliation so a crash between a donation write and its
// projection heals on boot.
func (s *DonationService) Resync(ctx context.Context) error {
	return s.resync(ctx)
}

func (s *DonationService) resync(ctx context.Context) error {
	start := time.Now()
	donations, err := s.donations.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load donations for resync")
	}
	derived := make([]models.Income, 0, len(donations))
	for _, donation := range donations {
		derived = append(derived, DeriveIncome(donation))
	}
	if err := s.incomes.ReplaceDerived(ctx, derived); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sync income ledger")
	}
	s.metrics.ObserveLedgerResync(time.Since(start))
	s.logger.Debug("income ledger resynced", zap.Int("derived_entries", len(derived)))
	return nil
}

// ExportCSV renders the donation list as a CSV document.
func (s *DonationService) ExportCSV(ctx context.Context) ([]byte, error) {
	donations, err := s.donations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list donations")
	}
	data := export.Dataset{Headers: []string{"Date", "Donor", "Purpose", "Amount"}}
	for _, d := range donations {
		data.Rows = append(data.Rows, []string{
			d.Date.Format("2006-01-02"),
			d.DonorName,
			d.Purpose,
			strconv.FormatFloat(d.Amount, 'f', 2, 64),
		})
	}
	csv, err := export.NewCSVExporter().Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render donations csv")
	}
	return csv, nil
}
