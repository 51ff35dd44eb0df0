package facility

import (
	"context"
	"errors"
	"time"
)

// Facility entity - office perk shown on the marketing site.
type Facility struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Position    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

var ErrFacilityNotFound = errors.New("facility not found")

// Repository - interface for the facilities table
type Repository interface {
	Create(ctx context.Context, f Facility) (Facility, error)
	List(ctx context.Context) ([]Facility, error)
	Update(ctx context.Context, f Facility) error
	Delete(ctx context.Context, id string) error
}
