package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

type fakeResultRepo struct {
	result *models.Result
}

func (f *fakeResultRepo) List(context.Context, string, string) ([]models.Result, error) {
	if f.result == nil {
		return nil, nil
	}
	return []models.Result{*f.result}, nil
}

func (f *fakeResultRepo) FindByID(_ context.Context, id string) (*models.Result, error) {
	if f.result == nil || f.result.ID != id {
		return nil, sql.ErrNoRows
	}
	return f.result, nil
}

func (f *fakeResultRepo) FindByStudent(_ context.Context, studentID string) (*models.Result, error) {
	if f.result == nil || f.result.StudentID != studentID {
		return nil, sql.ErrNoRows
	}
	return f.result, nil
}

func (f *fakeResultRepo) Create(_ context.Context, result *models.Result) error {
	f.result = result
	return nil
}

func (f *fakeResultRepo) Update(_ context.Context, result *models.Result) error {
	f.result = result
	return nil
}

func (f *fakeResultRepo) Delete(context.Context, string) error {
	f.result = nil
	return nil
}

type fakeStudentReader struct {
	student *models.Student
}

func (f *fakeStudentReader) FindByID(_ context.Context, id string) (*models.Student, error) {
	if f.student == nil || f.student.ID != id {
		return nil, sql.ErrNoRows
	}
	return f.student, nil
}

func (f *fakeStudentReader) FindByRollNo(_ context.Context, rollNo int) (*models.Student, error) {
	if f.student == nil || f.student.RollNo != rollNo {
		return nil, sql.ErrNoRows
	}
	return f.student, nil
}

func lookupRouter(results *fakeResultRepo, students *fakeStudentReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewResultService(results, students, nil, nil)
	h := NewResultHandler(svc, nil)
	r := gin.New()
	r.GET("/public/results/lookup", h.Lookup)
	return r
}

func decodeLookup(t *testing.T, rec *httptest.ResponseRecorder) models.ResultLookup {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var lookup models.ResultLookup
	require.NoError(t, json.Unmarshal(raw, &lookup))
	return lookup
}

func TestLookupRejectsBadRoll(t *testing.T) {
	r := lookupRouter(&fakeResultRepo{}, &fakeStudentReader{})

	for _, query := range []string{"", "?roll=abc", "?roll=0", "?roll=-5"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public/results/lookup"+query, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
	}
}

func TestLookupNoStudent(t *testing.T) {
	r := lookupRouter(&fakeResultRepo{}, &fakeStudentReader{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public/results/lookup?roll=101", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	lookup := decodeLookup(t, rec)
	assert.Equal(t, models.LookupNoStudent, lookup.Status)
	assert.Nil(t, lookup.Student)
}

func TestLookupNoResult(t *testing.T) {
	students := &fakeStudentReader{student: &models.Student{ID: "s1", RollNo: 101, Name: "Ahmed"}}
	r := lookupRouter(&fakeResultRepo{}, students)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public/results/lookup?roll=101", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	lookup := decodeLookup(t, rec)
	assert.Equal(t, models.LookupNoResult, lookup.Status)
	require.NotNil(t, lookup.Student)
	assert.Equal(t, "Ahmed", lookup.Student.Name)
}

func TestLookupFound(t *testing.T) {
	students := &fakeStudentReader{student: &models.Student{ID: "s1", RollNo: 101, Name: "Ahmed"}}
	results := &fakeResultRepo{result: &models.Result{
		ID:        "r1",
		StudentID: "s1",
		ExamName:  "Annual",
		Marks:     models.MarkList{{SubjectID: "sub1", Score: 80}, {SubjectID: "sub2", Score: 90}},
	}}
	r := lookupRouter(results, students)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public/results/lookup?roll=101", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	lookup := decodeLookup(t, rec)
	assert.Equal(t, models.LookupFound, lookup.Status)
	require.NotNil(t, lookup.Summary)
	assert.Equal(t, 170.0, lookup.Summary.TotalMarks)
	assert.Equal(t, "85.00", lookup.Summary.DisplayPercentage)
	assert.Equal(t, "A", lookup.Summary.Grade)
}
