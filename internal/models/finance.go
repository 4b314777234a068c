package models

import "time"

// Donation is one recorded gift. Donations are append-only from the admin
// surface; deleting one removes its derived income entry during the same
// transaction.
type Donation struct {
	ID        string    `db:"id" json:"id"`
	DonorName string    `db:"donor_name" json:"donor_name"`
	Amount    float64   `db:"amount" json:"amount"`
	Purpose   string    `db:"purpose" json:"purpose"`
	Date      time.Time `db:"date" json:"date"`
}

// Income is one ledger entry. DonationID records provenance: nil for entries
// typed in by the finance manager, set to the source donation for entries the
// reconciler derives. Derived entries are rebuilt wholesale on every donation
// change and must never displace manual ones.
type Income struct {
	ID          string        `db:"id" json:"id"`
	Source      LocalizedText `db:"source" json:"source"`
	Description string        `db:"description" json:"description"`
	Amount      float64       `db:"amount" json:"amount"`
	Date        time.Time     `db:"date" json:"date"`
	DonationID  *string       `db:"donation_id" json:"donation_id,omitempty"`
}

// Derived reports whether the entry was produced from a donation.
func (i Income) Derived() bool {
	return i.DonationID != nil
}

// Expense is one manually entered outgoing amount.
type Expense struct {
	ID          string        `db:"id" json:"id"`
	Category    LocalizedText `db:"category" json:"category"`
	Description string        `db:"description" json:"description"`
	Amount      float64       `db:"amount" json:"amount"`
	Date        time.Time     `db:"date" json:"date"`
}

// FinanceSummary aggregates the ledger for the accounts and dashboard views.
type FinanceSummary struct {
	TotalIncome        float64 `json:"total_income"`
	TotalExpenses      float64 `json:"total_expenses"`
	Balance            float64 `json:"balance"`
	TotalDonations     float64 `json:"total_donations"`
	DonationsThisMonth float64 `json:"donations_this_month"`
}
