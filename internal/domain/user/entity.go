package user

import "time"

type Position string

const (
	PositionOwner     Position = "owner"
	PositionDeveloper Position = "developer"
	PositionSales     Position = "sales"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User entity
type User struct {
	ID           string
	Name         string
	LastName     string
	Avatar       string
	Email        string
	PasswordHash string
	DOB          time.Time
	Phone        string
	Position     Position
	Role         Role
	Slack        *string
	GitHub       string
	Skype        string
	EnglishLevel string

	StartDate time.Time
	// EndDate set means the person no longer works here.
	EndDate *time.Time

	// VacationCount overrides the configured paid-vacation cap when > 0.
	VacationCount  int
	EvaluationDate time.Time
	Salary         *float64
	IsShown        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Employed reports whether the user has no end date yet.
func (u User) Employed() bool {
	return u.EndDate == nil
}

func (u User) FullName() string {
	return u.Name + " " + u.LastName
}
