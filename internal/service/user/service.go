package user

import (
	"context"
	"fmt"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	userRepo user.Repository
}

func NewUserService(userRepo user.Repository) *Service {
	return &Service{userRepo: userRepo}
}

// List returns all users; salary is stripped unless the caller is an admin.
func (s *Service) List(ctx context.Context, callerRole user.Role) ([]user.Response, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	withSalary := callerRole == user.RoleAdmin
	responses := make([]user.Response, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u, withSalary))
	}
	return responses, nil
}

func (s *Service) Get(ctx context.Context, id string, callerRole user.Role, callerID string) (user.Response, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.Response{}, err
	}
	withSalary := callerRole == user.RoleAdmin || callerID == id
	return user.ToResponse(u, withSalary), nil
}

func (s *Service) Create(ctx context.Context, req user.CreateUserRequest) (user.Response, error) {
	if err := req.Validate(); err != nil {
		return user.Response{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.Response{}, fmt.Errorf("hash password: %w", err)
	}

	dob, _ := time.Parse("2006-01-02", req.DOB)
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	evaluationDate := startDate.AddDate(0, 3, 0)
	if req.EvaluationDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.EvaluationDate); err == nil {
			evaluationDate = parsed
		}
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:           req.Name,
		LastName:       req.LastName,
		Avatar:         req.Avatar,
		Email:          req.Email,
		PasswordHash:   string(hashed),
		DOB:            dob,
		Phone:          req.Phone,
		Position:       user.Position(req.Position),
		Role:           user.RoleUser,
		Slack:          req.Slack,
		GitHub:         req.GitHub,
		Skype:          req.Skype,
		EnglishLevel:   req.EnglishLevel,
		StartDate:      startDate,
		VacationCount:  req.VacationCount,
		EvaluationDate: evaluationDate,
		Salary:         req.Salary,
		IsShown:        true,
	})
	if err != nil {
		return user.Response{}, err
	}
	return user.ToResponse(created, true), nil
}

func (s *Service) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.Response, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.Response{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Slack != nil {
		u.Slack = req.Slack
	}
	if req.GitHub != nil {
		u.GitHub = *req.GitHub
	}
	if req.Skype != nil {
		u.Skype = *req.Skype
	}
	if req.EnglishLevel != nil {
		u.EnglishLevel = *req.EnglishLevel
	}
	if req.VacationCount != nil {
		u.VacationCount = *req.VacationCount
	}
	if req.EvaluationDate != nil {
		if parsed, err := time.Parse("2006-01-02", *req.EvaluationDate); err == nil {
			u.EvaluationDate = parsed
		}
	}
	if req.Salary != nil {
		u.Salary = req.Salary
	}
	if req.IsShown != nil {
		u.IsShown = *req.IsShown
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return user.Response{}, fmt.Errorf("update user: %w", err)
	}
	return user.ToResponse(u, true), nil
}

// Terminate sets the user's end date, removing them from birthday
// projections and future leave eligibility.
func (s *Service) Terminate(ctx context.Context, id string, endDate time.Time) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !u.Employed() {
		return user.ErrAlreadyTerminated
	}
	return s.userRepo.SetEndDate(ctx, id, endDate)
}
