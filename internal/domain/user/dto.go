package user

import (
	"time"

	"github.com/crewlog/crewlog-backend/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name         string  `json:"name"`
	LastName     string  `json:"lastName"`
	Avatar       string  `json:"avatar"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	DOB          string  `json:"dob"`
	Phone        string  `json:"phone"`
	Position     string  `json:"position"`
	Slack        *string `json:"slack"`
	GitHub       string  `json:"github"`
	Skype        string  `json:"skype"`
	EnglishLevel string  `json:"englishLevel"`
	StartDate    string  `json:"startDate"`

	VacationCount  int      `json:"vacationCount"`
	EvaluationDate string   `json:"evaluationDate"`
	Salary         *float64 `json:"salary"`
}

func (r CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "Last name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if _, ok := validator.IsValidDate(r.DOB); !ok {
		errs = append(errs, validator.ValidationError{Field: "dob", Message: "Date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "Date must be in YYYY-MM-DD format"})
	}
	switch Position(r.Position) {
	case PositionOwner, PositionDeveloper, PositionSales:
	default:
		errs = append(errs, validator.ValidationError{Field: "position", Message: "Unknown position"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	Name           *string  `json:"name"`
	LastName       *string  `json:"lastName"`
	Avatar         *string  `json:"avatar"`
	Phone          *string  `json:"phone"`
	Slack          *string  `json:"slack"`
	GitHub         *string  `json:"github"`
	Skype          *string  `json:"skype"`
	EnglishLevel   *string  `json:"englishLevel"`
	VacationCount  *int     `json:"vacationCount"`
	EvaluationDate *string  `json:"evaluationDate"`
	Salary         *float64 `json:"salary"`
	IsShown        *bool    `json:"isShown"`
}

// Response is the API shape of a user. Salary is only populated for admins.
type Response struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	LastName       string     `json:"lastName"`
	Avatar         string     `json:"avatar"`
	Email          string     `json:"email"`
	DOB            time.Time  `json:"dob"`
	Phone          string     `json:"phone"`
	Position       Position   `json:"position"`
	Role           Role       `json:"role"`
	Slack          *string    `json:"slack,omitempty"`
	GitHub         string     `json:"github"`
	Skype          string     `json:"skype"`
	EnglishLevel   string     `json:"englishLevel"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	VacationCount  int        `json:"vacationCount"`
	EvaluationDate time.Time  `json:"evaluationDate"`
	Salary         *float64   `json:"salary,omitempty"`
	IsShown        bool       `json:"isShown"`
}

// ToResponse converts the entity, dropping the salary unless the caller may
// see compensation data.
func ToResponse(u User, withSalary bool) Response {
	resp := Response{
		ID:             u.ID,
		Name:           u.Name,
		LastName:       u.LastName,
		Avatar:         u.Avatar,
		Email:          u.Email,
		DOB:            u.DOB,
		Phone:          u.Phone,
		Position:       u.Position,
		Role:           u.Role,
		Slack:          u.Slack,
		GitHub:         u.GitHub,
		Skype:          u.Skype,
		EnglishLevel:   u.EnglishLevel,
		StartDate:      u.StartDate,
		EndDate:        u.EndDate,
		VacationCount:  u.VacationCount,
		EvaluationDate: u.EvaluationDate,
		IsShown:        u.IsShown,
	}
	if withSalary {
		resp.Salary = u.Salary
	}
	return resp
}
