package postgresql

import (
	"context"
	"fmt"

	"github.com/crewlog/crewlog-backend/internal/domain/facility"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
	"github.com/google/uuid"
)

const facilityColumns = `id, title, description, icon, position, created_at, updated_at`

type facilityRepositoryImpl struct {
	db *database.DB
}

func NewFacilityRepository(db *database.DB) facility.Repository {
	return &facilityRepositoryImpl{db: db}
}

// Create implements facility.Repository.
func (r *facilityRepositoryImpl) Create(ctx context.Context, f facility.Facility) (facility.Facility, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO facilities (id, title, description, icon, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + facilityColumns

	var created facility.Facility
	err := q.QueryRow(ctx, query, uuid.NewString(), f.Title, f.Description, f.Icon, f.Position).Scan(
		&created.ID, &created.Title, &created.Description, &created.Icon, &created.Position,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return facility.Facility{}, fmt.Errorf("failed to create facility: %w", err)
	}
	return created, nil
}

// List implements facility.Repository.
func (r *facilityRepositoryImpl) List(ctx context.Context) ([]facility.Facility, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+facilityColumns+` FROM facilities ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilities []facility.Facility
	for rows.Next() {
		var f facility.Facility
		err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Icon, &f.Position, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}
	return facilities, rows.Err()
}

// Update implements facility.Repository.
func (r *facilityRepositoryImpl) Update(ctx context.Context, f facility.Facility) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE facilities
		SET title = $1, description = $2, icon = $3, position = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, f.Title, f.Description, f.Icon, f.Position, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update facility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return facility.ErrFacilityNotFound
	}
	return nil
}

// Delete implements facility.Repository.
func (r *facilityRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM facilities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete facility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return facility.ErrFacilityNotFound
	}
	return nil
}
