package postgresql

import (
	"context"
	"fmt"

	"github.com/crewlog/crewlog-backend/internal/domain/feedback"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
	"github.com/google/uuid"
)

const feedbackColumns = `id, author, company, text, avatar, is_shown, created_at, updated_at`

type feedbackRepositoryImpl struct {
	db *database.DB
}

func NewFeedbackRepository(db *database.DB) feedback.Repository {
	return &feedbackRepositoryImpl{db: db}
}

// Create implements feedback.Repository.
func (r *feedbackRepositoryImpl) Create(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO feedbacks (id, author, company, text, avatar, is_shown)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + feedbackColumns

	var created feedback.Feedback
	err := q.QueryRow(ctx, query, uuid.NewString(), f.Author, f.Company, f.Text, f.Avatar, f.IsShown).Scan(
		&created.ID, &created.Author, &created.Company, &created.Text, &created.Avatar,
		&created.IsShown, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return feedback.Feedback{}, fmt.Errorf("failed to create feedback: %w", err)
	}
	return created, nil
}

// List implements feedback.Repository.
func (r *feedbackRepositoryImpl) List(ctx context.Context, onlyShown bool) ([]feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + feedbackColumns + ` FROM feedbacks`
	if onlyShown {
		query += ` WHERE is_shown`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []feedback.Feedback
	for rows.Next() {
		var f feedback.Feedback
		err := rows.Scan(&f.ID, &f.Author, &f.Company, &f.Text, &f.Avatar, &f.IsShown, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, rows.Err()
}

// SetShown implements feedback.Repository.
func (r *feedbackRepositoryImpl) SetShown(ctx context.Context, id string, shown bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE feedbacks SET is_shown = $1, updated_at = NOW() WHERE id = $2`, shown, id)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return feedback.ErrFeedbackNotFound
	}
	return nil
}

// Delete implements feedback.Repository.
func (r *feedbackRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return feedback.ErrFeedbackNotFound
	}
	return nil
}
