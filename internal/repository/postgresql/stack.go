package postgresql

import (
	"context"
	"fmt"

	"github.com/crewlog/crewlog-backend/internal/domain/stack"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
	"github.com/google/uuid"
)

type stackRepositoryImpl struct {
	db *database.DB
}

func NewStackRepository(db *database.DB) stack.Repository {
	return &stackRepositoryImpl{db: db}
}

// Create implements stack.Repository.
func (r *stackRepositoryImpl) Create(ctx context.Context, s stack.Stack) (stack.Stack, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stacks (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at
	`

	var created stack.Stack
	err := q.QueryRow(ctx, query, uuid.NewString(), s.Name).Scan(&created.ID, &created.Name, &created.CreatedAt)
	if err != nil {
		return stack.Stack{}, fmt.Errorf("failed to create stack: %w", err)
	}
	return created, nil
}

// List implements stack.Repository.
func (r *stackRepositoryImpl) List(ctx context.Context) ([]stack.Stack, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at FROM stacks ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stacks []stack.Stack
	for rows.Next() {
		var s stack.Stack
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		stacks = append(stacks, s)
	}
	return stacks, rows.Err()
}

// Delete implements stack.Repository.
func (r *stackRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM stacks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stack: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return stack.ErrStackNotFound
	}
	return nil
}
