package user

import (
	"context"
	"time"
)

// Repository - interface for the users table
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetEndDate(ctx context.Context, id string, endDate time.Time) error

	// OwnerSlackHandles returns the Slack handles of all owners, skipping
	// owners without one.
	OwnerSlackHandles(ctx context.Context) ([]string, error)
}
