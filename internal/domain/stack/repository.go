package stack

import (
	"context"
	"errors"
)

var ErrStackNotFound = errors.New("stack not found")

// Repository - interface for the stacks table
type Repository interface {
	Create(ctx context.Context, s Stack) (Stack, error)
	List(ctx context.Context) ([]Stack, error)
	Delete(ctx context.Context, id string) error
}
