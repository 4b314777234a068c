package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

func studentRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "roll_no", "name", "class", "section", "guardian_name",
		"admission_date", "contact", "type", "created_at", "updated_at",
	}).AddRow("s1", 101, "Ahmed", "Hifz", "A", "Karim", now, "0170000000", string(models.StudentResidential), now, now)
}

func TestFindByRollNoPicksOldestAdmission(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE roll_no = $1 ORDER BY admission_date ASC, id ASC LIMIT 1")).
		WithArgs(101).
		WillReturnRows(studentRows(now))

	student, err := repo.FindByRollNo(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, "s1", student.ID)
	assert.Equal(t, 101, student.RollNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByRollNoMissReportsNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("WHERE roll_no = ").WithArgs(999).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByRollNo(context.Background(), 999)
	assert.Equal(t, sql.ErrNoRows, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByRollNo(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM students WHERE roll_no = $1 LIMIT 1")).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	taken, err := repo.ExistsByRollNo(context.Background(), 101, "")
	require.NoError(t, err)
	assert.True(t, taken)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM students WHERE roll_no = $1 AND id <> $2 LIMIT 1")).
		WithArgs(101, "s1").
		WillReturnError(sql.ErrNoRows)

	taken, err = repo.ExistsByRollNo(context.Background(), 101, "s1")
	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStudentsAppliesFilters(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	now := time.Now()
	mock.ExpectQuery("FROM students WHERE 1=1 AND class = ").
		WithArgs("Hifz").
		WillReturnRows(studentRows(now))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("Hifz").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	students, total, err := repo.List(context.Background(), models.StudentFilter{Class: "Hifz"})
	require.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStudentAssignsID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").WillReturnResult(sqlmock.NewResult(1, 1))

	student := &models.Student{RollNo: 101, Name: "Ahmed", Class: "Hifz", Type: models.StudentResidential, AdmissionDate: time.Now()}
	err := repo.Create(context.Background(), student)
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.False(t, student.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
