package vacation

import (
	"context"
	"time"
)

// Repository - interface for the vacations table
type Repository interface {
	Create(ctx context.Context, v Vacation) (Vacation, error)
	GetByID(ctx context.Context, id string) (Vacation, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Vacation, error)
	Pending(ctx context.Context) ([]WithRequester, error)

	// CountApproved counts approved entries of the given type for the user
	// dated within [from, to).
	CountApproved(ctx context.Context, userID string, t Type, from, to time.Time) (int, error)
}
