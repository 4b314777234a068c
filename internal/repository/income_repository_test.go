package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestReplaceDerivedRunsInOneTransaction(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewIncomeRepository(db)

	donationID := "d1"
	derived := []models.Income{
		{ID: "i1", Source: models.LocalizedText{En: "Donation", Bn: "দান"}, Amount: 100, Date: time.Now(), DonationID: &donationID},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM incomes WHERE donation_id IS NOT NULL")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO incomes").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplaceDerived(context.Background(), derived)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceDerivedRollsBackOnInsertFailure(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewIncomeRepository(db)

	donationID := "d1"
	derived := []models.Income{
		{ID: "i1", Source: models.LocalizedText{En: "Donation", Bn: "দান"}, Amount: 100, Date: time.Now(), DonationID: &donationID},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM incomes WHERE donation_id IS NOT NULL")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO incomes").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ReplaceDerived(context.Background(), derived)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTouchesOnlyManualEntries(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewIncomeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM incomes WHERE id = $1 AND donation_id IS NULL")).
		WithArgs("i1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "i1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListManualFiltersDerived(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewIncomeRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "source", "description", "amount", "date", "donation_id"}).
		AddRow("i1", []byte(`{"en":"Tuition","bn":"টিউশন"}`), "March fees", 500.0, now, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, source, description, amount, date, donation_id FROM incomes WHERE donation_id IS NULL ORDER BY date DESC, id DESC")).
		WillReturnRows(rows)

	incomes, err := repo.ListManual(context.Background())
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, "Tuition", incomes[0].Source.En)
	assert.False(t, incomes[0].Derived())
	assert.NoError(t, mock.ExpectationsWereMet())
}
