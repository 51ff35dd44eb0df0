package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/crewlog/crewlog-backend/internal/domain/project"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const projectColumns = `id, name, customer_name, stack_ids, user_ids, is_active, is_internal,
	start_date, end_date, created_at, updated_at`

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.Repository {
	return &projectRepositoryImpl{db: db}
}

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.CustomerName, &p.StackIDs, &p.UserIDs, &p.IsActive, &p.IsInternal,
		&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements project.Repository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, name, customer_name, stack_ids, user_ids, is_active, is_internal, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + projectColumns

	created, err := scanProject(q.QueryRow(ctx, query,
		uuid.NewString(), p.Name, p.CustomerName, p.StackIDs, p.UserIDs, p.IsActive, p.IsInternal, p.StartDate,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.Project{}, project.ErrProjectNameExists
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// GetByID implements project.Repository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}
	return p, nil
}

// Find implements project.Repository.
func (r *projectRepositoryImpl) Find(ctx context.Context, filter project.Filter) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	addArg := func(value interface{}) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.UserID != nil {
		conditions = append(conditions, addArg(*filter.UserID)+" = ANY(user_ids)")
	}
	if filter.StackID != nil {
		conditions = append(conditions, addArg(*filter.StackID)+" = ANY(stack_ids)")
	}
	if filter.IsActive != nil {
		conditions = append(conditions, "is_active = "+addArg(*filter.IsActive))
	}
	if filter.IsInternal != nil {
		conditions = append(conditions, "is_internal = "+addArg(*filter.IsInternal))
	}

	query := `SELECT ` + projectColumns + ` FROM projects`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Update implements project.Repository.
func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, customer_name = $2, stack_ids = $3, user_ids = $4, is_active = $5,
			is_internal = $6, end_date = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		p.Name, p.CustomerName, p.StackIDs, p.UserIDs, p.IsActive, p.IsInternal, p.EndDate, p.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.ErrProjectNameExists
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// Delete implements project.Repository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}
