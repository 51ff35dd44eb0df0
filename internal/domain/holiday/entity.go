package holiday

import (
	"context"
	"errors"
	"time"
)

// Holiday entity - a company-wide non-working day.
type Holiday struct {
	ID   string
	Date time.Time
	Name string
}

var ErrHolidayNotFound = errors.New("holiday not found")

// Repository - interface for the holidays table
type Repository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context, from, to time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
