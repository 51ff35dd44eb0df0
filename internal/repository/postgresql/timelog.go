package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewlog/crewlog-backend/internal/domain/timelog"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const timelogColumns = `id, user_id, project_id, date, minutes, description, created_at, updated_at`

type timelogRepositoryImpl struct {
	db *database.DB
}

func NewTimelogRepository(db *database.DB) timelog.Repository {
	return &timelogRepositoryImpl{db: db}
}

func scanTimelog(row pgx.Row) (timelog.Timelog, error) {
	var t timelog.Timelog
	err := row.Scan(&t.ID, &t.UserID, &t.ProjectID, &t.Date, &t.Minutes, &t.Desc, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create implements timelog.Repository.
func (r *timelogRepositoryImpl) Create(ctx context.Context, t timelog.Timelog) (timelog.Timelog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timelogs (id, user_id, project_id, date, minutes, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + timelogColumns

	created, err := scanTimelog(q.QueryRow(ctx, query,
		uuid.NewString(), t.UserID, t.ProjectID, t.Date, t.Minutes, t.Desc,
	))
	if err != nil {
		return timelog.Timelog{}, fmt.Errorf("failed to create timelog: %w", err)
	}
	return created, nil
}

// GetByID implements timelog.Repository.
func (r *timelogRepositoryImpl) GetByID(ctx context.Context, id string) (timelog.Timelog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timelogColumns + ` FROM timelogs WHERE id = $1`

	t, err := scanTimelog(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.Timelog{}, timelog.ErrTimelogNotFound
		}
		return timelog.Timelog{}, fmt.Errorf("failed to get timelog by id: %w", err)
	}
	return t, nil
}

// Update implements timelog.Repository.
func (r *timelogRepositoryImpl) Update(ctx context.Context, t timelog.Timelog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timelogs
		SET date = $1, minutes = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, t.Date, t.Minutes, t.Desc, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update timelog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timelog.ErrTimelogNotFound
	}
	return nil
}

// Delete implements timelog.Repository.
func (r *timelogRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timelogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timelog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timelog.ErrTimelogNotFound
	}
	return nil
}
