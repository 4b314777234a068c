package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
)

type feedbackRepo interface {
	List(ctx context.Context) ([]models.Feedback, error)
	Create(ctx context.Context, feedback *models.Feedback) error
}

// SubmitFeedbackRequest holds the public contact-form payload.
type SubmitFeedbackRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// FeedbackService accepts visitor messages and lists them for reviewers.
type FeedbackService struct {
	feedback  feedbackRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeedbackService constructs FeedbackService.
func NewFeedbackService(feedback feedbackRepo, validate *validator.Validate, logger *zap.Logger) *FeedbackService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{feedback: feedback, validator: validate, logger: logger}
}

// Submit records a visitor message. This is the only unauthenticated write in
// the API.
func (s *FeedbackService) Submit(ctx context.Context, req SubmitFeedbackRequest) (*models.Feedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid feedback payload")
	}
	feedback := &models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store feedback")
	}
	s.logger.Info("feedback received", zap.String("feedback_id", feedback.ID))
	return feedback, nil
}

// List returns all messages newest first.
func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	entries, err := s.feedback.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list feedback")
	}
	return entries, nil
}
