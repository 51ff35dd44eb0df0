// Package catalog groups the small reference-data domains that back the
// public site and the admin panel: technology stacks, office facilities and
// client feedbacks.
package catalog

import (
	"context"
	"fmt"

	"github.com/crewlog/crewlog-backend/internal/domain/facility"
	"github.com/crewlog/crewlog-backend/internal/domain/feedback"
	"github.com/crewlog/crewlog-backend/internal/domain/stack"
	"github.com/crewlog/crewlog-backend/internal/pkg/validator"
)

type Service struct {
	stackRepo    stack.Repository
	facilityRepo facility.Repository
	feedbackRepo feedback.Repository
}

func NewCatalogService(stackRepo stack.Repository, facilityRepo facility.Repository, feedbackRepo feedback.Repository) *Service {
	return &Service{
		stackRepo:    stackRepo,
		facilityRepo: facilityRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *Service) CreateStack(ctx context.Context, name string) (stack.Stack, error) {
	if validator.IsEmpty(name) {
		return stack.Stack{}, validator.ValidationErrors{{Field: "name", Message: "Name is required"}}
	}
	created, err := s.stackRepo.Create(ctx, stack.Stack{Name: name})
	if err != nil {
		return stack.Stack{}, fmt.Errorf("create stack: %w", err)
	}
	return created, nil
}

func (s *Service) ListStacks(ctx context.Context) ([]stack.Stack, error) {
	return s.stackRepo.List(ctx)
}

func (s *Service) DeleteStack(ctx context.Context, id string) error {
	return s.stackRepo.Delete(ctx, id)
}

func (s *Service) CreateFacility(ctx context.Context, f facility.Facility) (facility.Facility, error) {
	if validator.IsEmpty(f.Title) {
		return facility.Facility{}, validator.ValidationErrors{{Field: "title", Message: "Title is required"}}
	}
	created, err := s.facilityRepo.Create(ctx, f)
	if err != nil {
		return facility.Facility{}, fmt.Errorf("create facility: %w", err)
	}
	return created, nil
}

func (s *Service) ListFacilities(ctx context.Context) ([]facility.Facility, error) {
	return s.facilityRepo.List(ctx)
}

func (s *Service) UpdateFacility(ctx context.Context, f facility.Facility) error {
	return s.facilityRepo.Update(ctx, f)
}

func (s *Service) DeleteFacility(ctx context.Context, id string) error {
	return s.facilityRepo.Delete(ctx, id)
}

// CreateFeedback stores a testimonial hidden by default so an admin can
// review it before it shows up on the site.
func (s *Service) CreateFeedback(ctx context.Context, req feedback.CreateFeedbackRequest) (feedback.Feedback, error) {
	if err := req.Validate(); err != nil {
		return feedback.Feedback{}, err
	}
	created, err := s.feedbackRepo.Create(ctx, feedback.Feedback{
		Author:  req.Author,
		Company: req.Company,
		Text:    req.Text,
		Avatar:  req.Avatar,
		IsShown: false,
	})
	if err != nil {
		return feedback.Feedback{}, fmt.Errorf("create feedback: %w", err)
	}
	return created, nil
}

func (s *Service) ListFeedbacks(ctx context.Context, includeHidden bool) ([]feedback.Feedback, error) {
	return s.feedbackRepo.List(ctx, !includeHidden)
}

func (s *Service) SetFeedbackShown(ctx context.Context, id string, shown bool) error {
	return s.feedbackRepo.SetShown(ctx, id, shown)
}

func (s *Service) DeleteFeedback(ctx context.Context, id string) error {
	return s.feedbackRepo.Delete(ctx, id)
}
