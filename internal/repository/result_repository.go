package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

// ResultRepository manages exam result records.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository constructs a ResultRepository.
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

const resultColumns = `id, student_id, exam_name, marks, remarks, created_at`

// List returns results newest first, optionally filtered by student or exam.
func (r *ResultRepository) List(ctx context.Context, studentID, examName string) ([]models.Result, error) {
	query := fmt.Sprintf("SELECT %s FROM results WHERE 1=1", resultColumns)
	args := []interface{}{}
	if studentID != "" {
		args = append(args, studentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if examName != "" {
		args = append(args, examName)
		query += fmt.Sprintf(" AND exam_name = $%d", len(args))
	}
	query += " ORDER BY created_at DESC, id DESC"

	var results []models.Result
	if err := r.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}

// FindByID fetches one result.
func (r *ResultRepository) FindByID(ctx context.Context, id string) (*models.Result, error) {
	query := fmt.Sprintf("SELECT %s FROM results WHERE id = $1", resultColumns)
	var result models.Result
	if err := r.db.GetContext(ctx, &result, query, id); err != nil {
		return nil, err
	}
	return &result, nil
}

// FindByStudent fetches the first recorded result for a student. The oldest
// record wins when a student has results from several exams, matching the
// public lookup behaviour.
func (r *ResultRepository) FindByStudent(ctx context.Context, studentID string) (*models.Result, error) {
	query := fmt.Sprintf("SELECT %s FROM results WHERE student_id = $1 ORDER BY created_at ASC, id ASC LIMIT 1", resultColumns)
	var result models.Result
	if err := r.db.GetContext(ctx, &result, query, studentID); err != nil {
		return nil, err
	}
	return &result, nil
}

// Count returns the total number of result records.
func (r *ResultRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM results"); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return count, nil
}

// Create inserts a new result record.
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO results (id, student_id, exam_name, marks, remarks, created_at)
        VALUES (:id, :student_id, :exam_name, :marks, :remarks, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("create result: %w", err)
	}
	return nil
}

// Update replaces a result wholesale, marks array included.
func (r *ResultRepository) Update(ctx context.Context, result *models.Result) error {
	const query = `UPDATE results SET exam_name = :exam_name, marks = :marks, remarks = :remarks WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("update result: %w", err)
	}
	return nil
}

// Delete removes a result record.
func (r *ResultRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM results WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	return nil
}
