package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

type mockResultRepo struct {
	results map[string]models.Result
	byStud  map[string]string
}

func newMockResultRepo() *mockResultRepo {
	return &mockResultRepo{results: make(map[string]models.Result), byStud: make(map[string]string)}
}

func (m *mockResultRepo) List(context.Context, string, string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range m.results {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockResultRepo) FindByID(_ context.Context, id string) (*models.Result, error) {
	result, ok := m.results[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &result, nil
}

func (m *mockResultRepo) FindByStudent(_ context.Context, studentID string) (*models.Result, error) {
	id, ok := m.byStud[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	result := m.results[id]
	return &result, nil
}

func (m *mockResultRepo) Create(_ context.Context, result *models.Result) error {
	if result.ID == "" {
		result.ID = "r-gen"
	}
	m.results[result.ID] = *result
	m.byStud[result.StudentID] = result.ID
	return nil
}

func (m *mockResultRepo) Update(_ context.Context, result *models.Result) error {
	m.results[result.ID] = *result
	return nil
}

func (m *mockResultRepo) Delete(_ context.Context, id string) error {
	delete(m.results, id)
	return nil
}

type mockStudentReader struct {
	students map[string]models.Student
	byRoll   map[int]string
}

func newMockStudentReader(students ...models.Student) *mockStudentReader {
	m := &mockStudentReader{students: make(map[string]models.Student), byRoll: make(map[int]string)}
	for _, s := range students {
		m.students[s.ID] = s
		if _, taken := m.byRoll[s.RollNo]; !taken {
			m.byRoll[s.RollNo] = s.ID
		}
	}
	return m
}

func (m *mockStudentReader) FindByID(_ context.Context, id string) (*models.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &student, nil
}

func (m *mockStudentReader) FindByRollNo(_ context.Context, rollNo int) (*models.Student, error) {
	id, ok := m.byRoll[rollNo]
	if !ok {
		return nil, sql.ErrNoRows
	}
	student := m.students[id]
	return &student, nil
}

func marks(scores ...float64) models.MarkList {
	list := make(models.MarkList, 0, len(scores))
	for i, score := range scores {
		list = append(list, models.Mark{SubjectID: string(rune('a' + i)), Score: score})
	}
	return list
}

func TestEvaluateTotalsAndPercentage(t *testing.T) {
	summary := Evaluate(marks(80, 90))

	assert.Equal(t, 170.0, summary.TotalMarks)
	assert.InDelta(t, 85.0, summary.Percentage, 1e-9)
	assert.Equal(t, "85.00", summary.DisplayPercentage)
	assert.Equal(t, "A", summary.Grade)
}

func TestEvaluateEmptyMarks(t *testing.T) {
	summary := Evaluate(nil)

	assert.Equal(t, 0.0, summary.TotalMarks)
	assert.Equal(t, 0.0, summary.Percentage)
	assert.Equal(t, "0.00", summary.DisplayPercentage)
	assert.Equal(t, "F", summary.Grade)
}

func TestEvaluateGradeBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		grade string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.999, "A"},
		{80, "A"},
		{79.999, "B"},
		{70, "B"},
		{69.999, "C"},
		{60, "C"},
		{59.999, "D"},
		{50, "D"},
		{49.999, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		summary := Evaluate(marks(tc.score))
		assert.Equal(t, tc.grade, summary.Grade, "score %v", tc.score)
	}
}

func TestEvaluateGradesOnUnroundedPercentage(t *testing.T) {
	// 89.996 displays as "90.00" but must not reach A+.
	summary := Evaluate(marks(89.996))

	assert.Equal(t, "90.00", summary.DisplayPercentage)
	assert.Equal(t, "A", summary.Grade)
}

func TestLookupByRollNoStudent(t *testing.T) {
	svc := NewResultService(newMockResultRepo(), newMockStudentReader(), nil, nil)

	lookup, err := svc.LookupByRoll(context.Background(), 101)
	require.NoError(t, err)

	assert.Equal(t, models.LookupNoStudent, lookup.Status)
	assert.Nil(t, lookup.Student)
	assert.Nil(t, lookup.Result)
	assert.Nil(t, lookup.Summary)
}

func TestLookupByRollNoResult(t *testing.T) {
	student := models.Student{ID: "s1", RollNo: 101, Name: "Ahmed"}
	svc := NewResultService(newMockResultRepo(), newMockStudentReader(student), nil, nil)

	lookup, err := svc.LookupByRoll(context.Background(), 101)
	require.NoError(t, err)

	assert.Equal(t, models.LookupNoResult, lookup.Status)
	require.NotNil(t, lookup.Student)
	assert.Equal(t, "Ahmed", lookup.Student.Name)
	assert.Nil(t, lookup.Result)
}

func TestLookupByRollFound(t *testing.T) {
	student := models.Student{ID: "s1", RollNo: 101, Name: "Ahmed"}
	results := newMockResultRepo()
	require.NoError(t, results.Create(context.Background(), &models.Result{
		ID:        "r1",
		StudentID: "s1",
		ExamName:  "Annual",
		Marks:     marks(80, 90),
		CreatedAt: time.Now(),
	}))
	svc := NewResultService(results, newMockStudentReader(student), nil, nil)

	lookup, err := svc.LookupByRoll(context.Background(), 101)
	require.NoError(t, err)

	assert.Equal(t, models.LookupFound, lookup.Status)
	require.NotNil(t, lookup.Summary)
	assert.Equal(t, 170.0, lookup.Summary.TotalMarks)
	assert.Equal(t, "85.00", lookup.Summary.DisplayPercentage)
	assert.Equal(t, "A", lookup.Summary.Grade)
}

func TestResultCreateRejectsUnknownStudent(t *testing.T) {
	svc := NewResultService(newMockResultRepo(), newMockStudentReader(), nil, nil)

	_, err := svc.Create(context.Background(), SaveResultRequest{
		StudentID: "ghost",
		ExamName:  "Annual",
		Marks:     []MarkInput{{SubjectID: "sub1", Score: 80}},
	})

	assert.Error(t, err)
}

func TestResultCreateRejectsOutOfRangeScore(t *testing.T) {
	student := models.Student{ID: "s1", RollNo: 101, Name: "Ahmed"}
	svc := NewResultService(newMockResultRepo(), newMockStudentReader(student), nil, nil)

	_, err := svc.Create(context.Background(), SaveResultRequest{
		StudentID: "s1",
		ExamName:  "Annual",
		Marks:     []MarkInput{{SubjectID: "sub1", Score: 101}},
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), SaveResultRequest{
		StudentID: "s1",
		ExamName:  "Annual",
		Marks:     []MarkInput{{SubjectID: "sub1", Score: -1}},
	})
	assert.Error(t, err)
}

func TestResultUpdateReplacesMarksWholesale(t *testing.T) {
	student := models.Student{ID: "s1", RollNo: 101, Name: "Ahmed"}
	results := newMockResultRepo()
	svc := NewResultService(results, newMockStudentReader(student), nil, nil)

	created, err := svc.Create(context.Background(), SaveResultRequest{
		StudentID: "s1",
		ExamName:  "Annual",
		Marks:     []MarkInput{{SubjectID: "sub1", Score: 80}, {SubjectID: "sub2", Score: 90}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, UpdateResultRequest{
		ExamName: "Annual",
		Marks:    []MarkInput{{SubjectID: "sub3", Score: 55}},
	})
	require.NoError(t, err)

	require.Len(t, updated.Marks, 1)
	assert.Equal(t, "sub3", updated.Marks[0].SubjectID)
}
