package worklog

import (
	"context"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
)

// Repository exposes the four independent log sources. Every read is scoped
// by a half-open window [from, to); the fetches carry no ordering guarantee
// between kinds.
type Repository interface {
	// Timelogs returns date/minutes projections, optionally narrowed to a
	// user and/or project.
	Timelogs(ctx context.Context, from, to time.Time, userID, projectID *string) ([]TimelogEntry, error)

	// Vacations returns date/status projections; status is not filtered
	// here, callers decide what counts.
	Vacations(ctx context.Context, from, to time.Time, userID *string, vtype *vacation.Type) ([]VacationEntry, error)

	// Holidays are global, never user- or project-scoped.
	Holidays(ctx context.Context, from, to time.Time) ([]HolidayEntry, error)

	// Birthdays projects the date of birth of every shown, still-employed
	// user whose birthday month matches; day additionally matches when not
	// nil. Returned dates keep the birth year.
	Birthdays(ctx context.Context, month time.Month, day *int) ([]Birthday, error)

	// TimelogDetails and VacationDetails return full records with joined
	// user/project info for the single-day listing.
	TimelogDetails(ctx context.Context, from, to time.Time, userID, projectID *string) ([]Record, error)
	VacationDetails(ctx context.Context, from, to time.Time, userID *string, vtype *vacation.Type) ([]Record, error)
}
