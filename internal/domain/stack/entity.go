package stack

import "time"

// Stack entity - a technology used across projects
type Stack struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
