package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/export"
)

// Evaluate computes the reportable summary for a marks list. Each subject is
// scored out of 100; an empty list evaluates to zero percent rather than
// dividing by zero. Grading uses the unrounded percentage so a value like
// 89.996 stays an "A" even though it displays as "90.00".
func Evaluate(marks models.MarkList) models.ResultSummary {
	total := 0.0
	for _, mark := range marks {
		total += mark.Score
	}
	percentage := 0.0
	if len(marks) > 0 {
		percentage = total / (float64(len(marks)) * 100) * 100
	}
	return models.ResultSummary{
		TotalMarks:        total,
		Percentage:        percentage,
		DisplayPercentage: strconv.FormatFloat(percentage, 'f', 2, 64),
		Grade:             gradeFor(percentage),
	}
}

// gradeFor maps a percentage to its letter grade. Thresholds are inclusive
// lower bounds checked in descending order.
func gradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 50:
		return "D"
	default:
		return "F"
	}
}

type resultRepo interface {
	List(ctx context.Context, studentID, examName string) ([]models.Result, error)
	FindByID(ctx context.Context, id string) (*models.Result, error)
	FindByStudent(ctx context.Context, studentID string) (*models.Result, error)
	Create(ctx context.Context, result *models.Result) error
	Update(ctx context.Context, result *models.Result) error
	Delete(ctx context.Context, id string) error
}

type studentReader interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByRollNo(ctx context.Context, rollNo int) (*models.Student, error)
}

// MarkInput is one (subject, score) pair in a result payload.
type MarkInput struct {
	SubjectID string  `json:"subject_id" validate:"required"`
	Score     float64 `json:"score" validate:"min=0,max=100"`
}

// SaveResultRequest holds the payload for creating a result.
type SaveResultRequest struct {
	StudentID string      `json:"student_id" validate:"required"`
	ExamName  string      `json:"exam_name" validate:"required"`
	Marks     []MarkInput `json:"marks" validate:"required,min=1,dive"`
	Remarks   string      `json:"remarks"`
}

// UpdateResultRequest replaces a result wholesale; the marks array is never
// patched mark by mark.
type UpdateResultRequest struct {
	ExamName string      `json:"exam_name" validate:"required"`
	Marks    []MarkInput `json:"marks" validate:"required,min=1,dive"`
	Remarks  string      `json:"remarks"`
}

// ResultView pairs a stored result with its computed summary and the student
// it belongs to, for the management listing.
type ResultView struct {
	Result  models.Result        `json:"result"`
	Student *models.Student      `json:"student,omitempty"`
	Summary models.ResultSummary `json:"summary"`
}

// ResultService manages exam results and the public roll-number lookup.
type ResultService struct {
	results   resultRepo
	students  studentReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResultService constructs ResultService.
func NewResultService(results resultRepo, students studentReader, validate *validator.Validate, logger *zap.Logger) *ResultService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultService{results: results, students: students, validator: validate, logger: logger}
}

// List returns results with their computed summaries, newest first. A result
// whose student is missing still renders; the student slot stays nil for the
// display layer to placeholder.
func (s *ResultService) List(ctx context.Context, studentID, examName string) ([]ResultView, error) {
	results, err := s.results.List(ctx, studentID, examName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list results")
	}
	views := make([]ResultView, 0, len(results))
	for _, result := range results {
		view := ResultView{Result: result, Summary: Evaluate(result.Marks)}
		student, err := s.students.FindByID(ctx, result.StudentID)
		if err == nil {
			view.Student = student
		} else if err != sql.ErrNoRows {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
		}
		views = append(views, view)
	}
	return views, nil
}

// Create records a new result for a student.
func (s *ResultService) Create(ctx context.Context, req SaveResultRequest) (*models.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid result payload")
	}
	if _, err := s.students.FindByID(ctx, req.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	result := &models.Result{
		StudentID: req.StudentID,
		ExamName:  req.ExamName,
		Marks:     marksFromInput(req.Marks),
		Remarks:   req.Remarks,
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create result")
	}
	return result, nil
}

// Update replaces an existing result's exam name, marks and remarks.
func (s *ResultService) Update(ctx context.Context, id string, req UpdateResultRequest) (*models.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid result payload")
	}
	result, err := s.results.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "result not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load result")
	}
	result.ExamName = req.ExamName
	result.Marks = marksFromInput(req.Marks)
	result.Remarks = req.Remarks
	if err := s.results.Update(ctx, result); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update result")
	}
	return result, nil
}

// Delete removes a result record.
func (s *ResultService) Delete(ctx context.Context, id string) error {
	if _, err := s.results.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "result not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load result")
	}
	if err := s.results.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete result")
	}
	return nil
}

// LookupByRoll resolves a roll number to one of three outcomes: no matching
// student, a student without a result, or a student with a result and its
// computed summary. The caller branches on the status tag, never on which
// pointers happen to be nil.
func (s *ResultService) LookupByRoll(ctx context.Context, rollNo int) (*models.ResultLookup, error) {
	student, err := s.students.FindByRollNo(ctx, rollNo)
	if err != nil {
		if err == sql.ErrNoRows {
			return &models.ResultLookup{Status: models.LookupNoStudent}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up student")
	}
	result, err := s.results.FindByStudent(ctx, student.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return &models.ResultLookup{Status: models.LookupNoResult, Student: student}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up result")
	}
	summary := Evaluate(result.Marks)
	return &models.ResultLookup{
		Status:  models.LookupFound,
		Student: student,
		Result:  result,
		Summary: &summary,
	}, nil
}

// Marksheet renders a result as a PDF marksheet.
func (s *ResultService) Marksheet(ctx context.Context, id string, subjects []models.Subject) ([]byte, error) {
	result, err := s.results.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "result not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load result")
	}
	studentName := "Unknown"
	rollNo := ""
	if student, err := s.students.FindByID(ctx, result.StudentID); err == nil {
		studentName = student.Name
		rollNo = strconv.Itoa(student.RollNo)
	}
	names := make(map[string]string, len(subjects))
	for _, subject := range subjects {
		names[subject.ID] = subject.Name.En
	}

	data := export.Dataset{Headers: []string{"Subject", "Score"}}
	for _, mark := range result.Marks {
		name, ok := names[mark.SubjectID]
		if !ok {
			name = mark.SubjectID
		}
		data.Rows = append(data.Rows, []string{name, strconv.FormatFloat(mark.Score, 'f', 0, 64)})
	}
	summary := Evaluate(result.Marks)
	data.Rows = append(data.Rows,
		[]string{"Total", strconv.FormatFloat(summary.TotalMarks, 'f', 0, 64)},
		[]string{"Percentage", summary.DisplayPercentage + "%"},
		[]string{"Grade", summary.Grade},
	)

	subtitle := fmt.Sprintf("%s (Roll %s) - %s", studentName, rollNo, result.ExamName)
	pdf, err := export.NewPDFExporter().Render(data, "Marksheet", subtitle)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render marksheet")
	}
	return pdf, nil
}

func marksFromInput(inputs []MarkInput) models.MarkList {
	marks := make(models.MarkList, 0, len(inputs))
	for _, input := range inputs {
		marks = append(marks, models.Mark{SubjectID: input.SubjectID, Score: input.Score})
	}
	return marks
}
