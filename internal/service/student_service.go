package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
)

type studentRepo interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByRollNo(ctx context.Context, rollNo int, excludeID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// SaveStudentRequest holds the payload for creating or updating a student.
type SaveStudentRequest struct {
	RollNo        int                `json:"roll_no" validate:"required,min=1"`
	Name          string             `json:"name" validate:"required"`
	Class         string             `json:"class" validate:"required"`
	Section       string             `json:"section"`
	GuardianName  string             `json:"guardian_name" validate:"required"`
	AdmissionDate time.Time          `json:"admission_date" validate:"required"`
	Contact       string             `json:"contact"`
	Type          models.StudentType `json:"type" validate:"required,oneof=Residential Non-Residential"`
}

// StudentService manages the student roster.
type StudentService struct {
	students  studentRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(students studentRepo, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, validator: validate, logger: logger}
}

// List returns students matching the filter plus the total count for paging.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	students, total, err := s.students.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, total, nil
}

// Get fetches a single student.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create enrolls a new student. Roll numbers must be unique.
func (s *StudentService) Create(ctx context.Context, req SaveStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	taken, err := s.students.ExistsByRollNo(ctx, req.RollNo, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check roll number")
	}
	if taken {
		return nil, appErrors.Clone(appErrors.ErrConflict, "roll number already in use")
	}
	student := &models.Student{
		RollNo:        req.RollNo,
		Name:          req.Name,
		Class:         req.Class,
		Section:       req.Section,
		GuardianName:  req.GuardianName,
		AdmissionDate: req.AdmissionDate,
		Contact:       req.Contact,
		Type:          req.Type,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return student, nil
}

// Update modifies an existing student record.
func (s *StudentService) Update(ctx context.Context, id string, req SaveStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	taken, err := s.students.ExistsByRollNo(ctx, req.RollNo, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check roll number")
	}
	if taken {
		return nil, appErrors.Clone(appErrors.ErrConflict, "roll number already in use")
	}
	student.RollNo = req.RollNo
	student.Name = req.Name
	student.Class = req.Class
	student.Section = req.Section
	student.GuardianName = req.GuardianName
	student.AdmissionDate = req.AdmissionDate
	student.Contact = req.Contact
	student.Type = req.Type
	if err := s.students.Update(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return student, nil
}

// Delete removes a student from the roster. Any results the student has
// remain; the results listing renders them without a student.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if _, err := s.students.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	return nil
}
