package worklog

import (
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
)

// Kind tags a fetched record with its source. The tag is assigned at fetch
// time, never inferred from the record shape.
type Kind int

const (
	KindTimelog Kind = iota + 1
	KindVacation
	KindHoliday
	KindBirthday
)

// LogType selects which sources a query touches.
type LogType string

const (
	LogTypeAll       LogType = "all"
	LogTypeTimelogs  LogType = "timelogs"
	LogTypeVacations LogType = "vacations"
	LogTypeHolidays  LogType = "holidays"
	LogTypeBirthdays LogType = "birthdays"
)

func ParseLogType(s string) (LogType, error) {
	switch LogType(s) {
	case LogTypeAll, LogTypeTimelogs, LogTypeVacations, LogTypeHolidays, LogTypeBirthdays:
		return LogType(s), nil
	default:
		return "", ErrInvalidLogType
	}
}

// TimelogEntry is the monthly-view projection of a timelog.
type TimelogEntry struct {
	Date    time.Time
	Minutes int
}

// VacationEntry is the monthly-view projection of a leave entry.
type VacationEntry struct {
	Date   time.Time
	Status vacation.Status
}

// HolidayEntry is a company holiday within the window.
type HolidayEntry struct {
	Date time.Time
	Name string
}

// Birthday is projected from a user's date of birth; Date keeps the birth
// year until the service re-anchors it to the query year.
type Birthday struct {
	Date     time.Time
	FullName string
}

// UserRef and ProjectRef carry joined display info on detailed records.
type UserRef struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LastName string  `json:"lastName"`
	Avatar   string  `json:"avatar,omitempty"`
	Slack    *string `json:"slack,omitempty"`
}

type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Record is the tagged union handed to the reducer and returned by the
// single-day listing. Only the fields of its Kind are set.
type Record struct {
	Kind Kind      `json:"-"`
	ID   string    `json:"id,omitempty"`
	Date time.Time `json:"date"`

	// KindTimelog
	Minutes *int        `json:"minutes,omitempty"`
	Project *ProjectRef `json:"project,omitempty"`

	// KindVacation
	Status *vacation.Status `json:"status,omitempty"`
	Type   *vacation.Type   `json:"type,omitempty"`

	// KindHoliday
	Name *string `json:"name,omitempty"`

	// KindBirthday
	FullName *string `json:"fullName,omitempty"`

	Desc *string  `json:"desc,omitempty"`
	User *UserRef `json:"user,omitempty"`
}

// DayEntry is the computed per-day composite; only the kinds present on that
// day are serialized.
type DayEntry struct {
	// Timelogs is the summed worked time in hours, rounded to the nearest 0.5.
	Timelogs *float64 `json:"timelogs,omitempty"`
	// Vacations counts approved leave entries on the day.
	Vacations *int     `json:"vacations,omitempty"`
	Holidays  []string `json:"holidays,omitempty"`
	Birthdays *bool    `json:"birthdays,omitempty"`
}

// Empty reports whether no kind contributed to the day.
func (d DayEntry) Empty() bool {
	return d.Timelogs == nil && d.Vacations == nil && len(d.Holidays) == 0 && d.Birthdays == nil
}

// Statistic is the monthly work-hour summary. ToBeWorkedOut and Overtime are
// nil for project-scoped views, where they are not applicable.
type Statistic struct {
	WorkedOut     string  `json:"workedOut"`
	ToBeWorkedOut *string `json:"toBeWorkedOut"`
	Overtime      *string `json:"overtime"`
}

// LogsResponse is the calendar view for a month window.
type LogsResponse struct {
	Logs      map[string]DayEntry `json:"logs"`
	Statistic *Statistic          `json:"statistic"`
}

// DayLogsResponse is the flat single-day drill-down, with leave balances
// attached when a specific user was requested.
type DayLogsResponse struct {
	Logs              []Record `json:"logs"`
	VacationAvailable *int     `json:"vacationAvailable,omitempty"`
	SickAvailable     *int     `json:"sickAvailable,omitempty"`
}
