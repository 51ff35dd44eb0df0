package timelog

import "context"

// Repository - interface for the timelogs table
type Repository interface {
	Create(ctx context.Context, t Timelog) (Timelog, error)
	GetByID(ctx context.Context, id string) (Timelog, error)
	Update(ctx context.Context, t Timelog) error
	Delete(ctx context.Context, id string) error
}
