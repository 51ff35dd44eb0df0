package timelog

import "time"

// Timelog entity - hours worked by a user on a project on a given day.
// Duration is minute-granular.
type Timelog struct {
	ID        string
	UserID    string
	ProjectID string
	Date      time.Time
	Minutes   int
	Desc      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
