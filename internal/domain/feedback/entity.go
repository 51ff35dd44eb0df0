package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/crewlog/crewlog-backend/internal/pkg/validator"
)

// Feedback entity - a client testimonial.
type Feedback struct {
	ID      string
	Author  string
	Company string
	Text    string
	Avatar  string
	IsShown bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

var ErrFeedbackNotFound = errors.New("feedback not found")

type CreateFeedbackRequest struct {
	Author  string `json:"author"`
	Company string `json:"company"`
	Text    string `json:"text"`
	Avatar  string `json:"avatar"`
}

func (r CreateFeedbackRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Author) {
		errs = append(errs, validator.ValidationError{Field: "author", Message: "Author is required"})
	}
	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{Field: "text", Message: "Text is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Repository - interface for the feedbacks table
type Repository interface {
	Create(ctx context.Context, f Feedback) (Feedback, error)
	List(ctx context.Context, onlyShown bool) ([]Feedback, error)
	SetShown(ctx context.Context, id string, shown bool) error
	Delete(ctx context.Context, id string) error
}
