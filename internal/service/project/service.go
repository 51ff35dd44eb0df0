package project

import (
	"context"
	"fmt"

	"github.com/crewlog/crewlog-backend/internal/domain/project"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	worklogsvc "github.com/crewlog/crewlog-backend/internal/service/worklog"
)

type Service struct {
	projectRepo project.Repository
}

func NewProjectService(projectRepo project.Repository) *Service {
	return &Service{projectRepo: projectRepo}
}

// Find lists projects. Filters are admin-only; regular users always get the
// unfiltered listing.
func (s *Service) Find(ctx context.Context, filter project.Filter, callerRole user.Role) ([]project.Project, error) {
	if callerRole != user.RoleAdmin &&
		(filter.UserID != nil || filter.StackID != nil || filter.IsActive != nil || filter.IsInternal != nil) {
		return nil, project.ErrFilterNotAllowed
	}
	projects, err := s.projectRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	return projects, nil
}

func (s *Service) Get(ctx context.Context, id string) (project.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}
	startDate, _ := worklogsvc.ParseDate(req.StartDate)

	created, err := s.projectRepo.Create(ctx, project.Project{
		Name:         req.Name,
		CustomerName: req.CustomerName,
		StackIDs:     req.StackIDs,
		UserIDs:      req.UserIDs,
		IsActive:     req.IsActive,
		IsInternal:   req.IsInternal,
		StartDate:    startDate,
	})
	if err != nil {
		return project.Project{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.Project{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.CustomerName != nil {
		p.CustomerName = *req.CustomerName
	}
	if req.StackIDs != nil {
		p.StackIDs = *req.StackIDs
	}
	if req.UserIDs != nil {
		p.UserIDs = *req.UserIDs
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.IsInternal != nil {
		p.IsInternal = *req.IsInternal
	}
	if req.EndDate != nil {
		endDate, err := worklogsvc.ParseDate(*req.EndDate)
		if err != nil {
			return project.Project{}, err
		}
		p.EndDate = &endDate
	}

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return project.Project{}, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}
