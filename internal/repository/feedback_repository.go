package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

// FeedbackRepository manages visitor messages from the contact form.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository constructs a FeedbackRepository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// List returns feedback newest first.
func (r *FeedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	var feedback []models.Feedback
	const query = `SELECT id, name, email, message, created_at FROM feedback ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &feedback, query); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return feedback, nil
}

// Create inserts a feedback message.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO feedback (id, name, email, message, created_at)
        VALUES (:id, :name, :email, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, feedback); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// Count returns the total number of messages.
func (r *FeedbackRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM feedback"); err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return count, nil
}
