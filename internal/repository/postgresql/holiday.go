package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/holiday"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
	"github.com/google/uuid"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.Repository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, date, name)
		VALUES ($1, $2, $3)
		RETURNING id, date, name
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query, uuid.NewString(), h.Date, h.Name).Scan(&created.ID, &created.Date, &created.Name)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

// List implements holiday.Repository.
func (r *holidayRepositoryImpl) List(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, date, name FROM holidays WHERE date >= $1 AND date < $2 ORDER BY date`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Delete implements holiday.Repository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
