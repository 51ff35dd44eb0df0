package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const vacationColumns = `id, user_id, date, type, status, description, created_at, updated_at`

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.Repository {
	return &vacationRepositoryImpl{db: db}
}

func scanVacation(row pgx.Row) (vacation.Vacation, error) {
	var v vacation.Vacation
	err := row.Scan(&v.ID, &v.UserID, &v.Date, &v.Type, &v.Status, &v.Desc, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

// Create implements vacation.Repository.
func (r *vacationRepositoryImpl) Create(ctx context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (id, user_id, date, type, status, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + vacationColumns

	created, err := scanVacation(q.QueryRow(ctx, query,
		uuid.NewString(), v.UserID, v.Date, v.Type, v.Status, v.Desc,
	))
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to create vacation: %w", err)
	}
	return created, nil
}

// GetByID implements vacation.Repository.
func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + ` FROM vacations WHERE id = $1`

	v, err := scanVacation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Vacation{}, vacation.ErrVacationNotFound
		}
		return vacation.Vacation{}, fmt.Errorf("failed to get vacation by id: %w", err)
	}
	return v, nil
}

// UpdateStatus implements vacation.Repository.
func (r *vacationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status vacation.Status) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacations
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + vacationColumns

	v, err := scanVacation(q.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Vacation{}, vacation.ErrVacationNotFound
		}
		return vacation.Vacation{}, fmt.Errorf("failed to update vacation status: %w", err)
	}
	return v, nil
}

// Pending implements vacation.Repository.
func (r *vacationRepositoryImpl) Pending(ctx context.Context) ([]vacation.WithRequester, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.user_id, v.date, v.type, v.status, v.description, v.created_at, v.updated_at,
			u.id, u.name, u.last_name, u.avatar, u.slack
		FROM vacations v
		JOIN users u ON u.id = v.user_id
		WHERE v.status = $1
		ORDER BY v.date
	`

	rows, err := q.Query(ctx, query, vacation.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []vacation.WithRequester
	for rows.Next() {
		var v vacation.WithRequester
		err := rows.Scan(
			&v.ID, &v.UserID, &v.Date, &v.Type, &v.Status, &v.Desc, &v.CreatedAt, &v.UpdatedAt,
			&v.User.ID, &v.User.Name, &v.User.LastName, &v.User.Avatar, &v.User.Slack,
		)
		if err != nil {
			return nil, err
		}
		pending = append(pending, v)
	}
	return pending, rows.Err()
}

// CountApproved implements vacation.Repository.
func (r *vacationRepositoryImpl) CountApproved(ctx context.Context, userID string, t vacation.Type, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM vacations
		WHERE user_id = $1 AND type = $2 AND status = $3 AND date >= $4 AND date < $5
	`

	var count int
	err := q.QueryRow(ctx, query, userID, t, vacation.StatusApproved, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count approved vacations: %w", err)
	}
	return count, nil
}
