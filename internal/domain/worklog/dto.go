package worklog

import (
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/pkg/validator"
)

// Query scopes a log aggregation request. First is the normalized reference
// date; the window derived from it is a month for the calendar view and a
// single day for the drill-down.
type Query struct {
	First        time.Time
	LogType      LogType
	UserID       *string
	ProjectID    *string
	VacationType *vacation.Type
}

// Validate fails fast on malformed ids before any query executes.
func (q Query) Validate() error {
	if q.UserID != nil && !validator.IsValidUUID(*q.UserID) {
		return ErrInvalidUserID
	}
	if q.ProjectID != nil && !validator.IsValidUUID(*q.ProjectID) {
		return ErrInvalidProjectID
	}
	if q.VacationType != nil {
		switch *q.VacationType {
		case vacation.TypeVacationUnpaid, vacation.TypeVacationPaid,
			vacation.TypeSickUnpaid, vacation.TypeSickPaid:
		default:
			return ErrInvalidVacationType
		}
	}
	return nil
}
