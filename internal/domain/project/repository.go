package project

import "context"

// Filter narrows project listing; nil fields are not applied.
type Filter struct {
	UserID     *string
	StackID    *string
	IsActive   *bool
	IsInternal *bool
}

// Repository - interface for the projects table
type Repository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Find(ctx context.Context, filter Filter) ([]Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error
}
