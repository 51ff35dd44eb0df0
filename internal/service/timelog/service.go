package timelog

import (
	"context"
	"fmt"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/timelog"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	worklogsvc "github.com/crewlog/crewlog-backend/internal/service/worklog"
)

type Service struct {
	timelogRepo timelog.Repository
}

func NewTimelogService(timelogRepo timelog.Repository) *Service {
	return &Service{timelogRepo: timelogRepo}
}

func (s *Service) Create(ctx context.Context, userID, projectID string, req timelog.CreateTimelogRequest) (timelog.Timelog, error) {
	if err := req.Validate(); err != nil {
		return timelog.Timelog{}, err
	}

	date, _ := worklogsvc.ParseDate(req.Date)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if date.Before(monthStart) {
		return timelog.Timelog{}, timelog.ErrPastMonth
	}

	minutes, err := worklogsvc.ClockToMinutes(req.Time)
	if err != nil {
		return timelog.Timelog{}, err
	}

	created, err := s.timelogRepo.Create(ctx, timelog.Timelog{
		UserID:    userID,
		ProjectID: projectID,
		Date:      date,
		Minutes:   minutes,
		Desc:      req.Desc,
	})
	if err != nil {
		return timelog.Timelog{}, fmt.Errorf("create timelog: %w", err)
	}
	return created, nil
}

// Get returns a single timelog. Non-admins can only read their own entries.
func (s *Service) Get(ctx context.Context, id string, caller user.User) (timelog.Timelog, error) {
	t, err := s.timelogRepo.GetByID(ctx, id)
	if err != nil {
		return timelog.Timelog{}, err
	}
	if caller.Role != user.RoleAdmin && t.UserID != caller.ID {
		return timelog.Timelog{}, timelog.ErrNotYourTimelog
	}
	return t, nil
}

// Change updates a timelog in place. Non-admins can only touch their own
// entries.
func (s *Service) Change(ctx context.Context, id string, req timelog.ChangeTimelogRequest, caller user.User) (timelog.Timelog, error) {
	if err := req.Validate(); err != nil {
		return timelog.Timelog{}, err
	}

	t, err := s.timelogRepo.GetByID(ctx, id)
	if err != nil {
		return timelog.Timelog{}, err
	}
	if caller.Role != user.RoleAdmin && t.UserID != caller.ID {
		return timelog.Timelog{}, timelog.ErrNotYourTimelog
	}

	if req.Date != nil {
		date, _ := worklogsvc.ParseDate(*req.Date)
		t.Date = date
	}
	if req.Time != nil {
		minutes, err := worklogsvc.ClockToMinutes(*req.Time)
		if err != nil {
			return timelog.Timelog{}, err
		}
		t.Minutes = minutes
	}
	if req.Desc != nil {
		t.Desc = *req.Desc
	}

	if err := s.timelogRepo.Update(ctx, t); err != nil {
		return timelog.Timelog{}, fmt.Errorf("update timelog: %w", err)
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id string, caller user.User) error {
	t, err := s.timelogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if caller.Role != user.RoleAdmin && t.UserID != caller.ID {
		return timelog.ErrNotYourTimelog
	}
	return s.timelogRepo.Delete(ctx, id)
}
