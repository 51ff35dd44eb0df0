package project

import "time"

// Project entity - a client engagement
type Project struct {
	ID           string
	Name         string
	CustomerName string
	StackIDs     []string
	UserIDs      []string
	IsActive     bool
	IsInternal   bool
	StartDate    time.Time
	EndDate      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
