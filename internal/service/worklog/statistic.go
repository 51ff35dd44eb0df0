package worklog

import (
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/worklog"
)

// overtimeMultiplier applies to hours worked beyond the monthly requirement.
const overtimeMultiplier = 1.5

// hoursPerWorkday is the nominal working day length.
const hoursPerWorkday = 8

// RequiredHours computes the hours a named user is expected to work in the
// month: the calendar-hour baseline net of weekday hours, weekday holidays
// and approved leave days.
func RequiredHours(month time.Time, holidayWeekdayCount, approvedLeaveDays int) float64 {
	weekdayHours := float64(WeekdayCount(month) * hoursPerWorkday)
	holidayHours := float64(holidayWeekdayCount * hoursPerWorkday)
	leaveHours := float64(approvedLeaveDays * hoursPerWorkday)
	return HoursInMonth(month) - weekdayHours - holidayHours - leaveHours
}

// Overtime returns the surplus multiplied by 1.5, or the raw deficit when
// the requirement was not met.
func Overtime(workedOut, toBeWorkedOut float64) float64 {
	diff := workedOut - toBeWorkedOut
	if diff > 0 {
		return diff * overtimeMultiplier
	}
	return diff
}

// StatisticInput carries everything the monthly summary needs, already
// aggregated by the caller.
type StatisticInput struct {
	// Month anchors the window the statistic describes.
	Month time.Time
	// WorkedOutHours is the unrounded total across the window.
	WorkedOutHours float64
	// HolidayWeekdayCount is the number of holidays falling on a weekday.
	HolidayWeekdayCount int
	// ApprovedLeaveDays is the number of approved leave entries in window.
	ApprovedLeaveDays int
	// UserRequested is true when the query names a specific user; the
	// requirement and overtime are only meaningful then.
	UserRequested bool
	// ProjectScoped is true when a project filter is present; requirement
	// and overtime are reported as null rather than zero in that case.
	ProjectScoped bool
	// LeaveOnly is true for vacations-only queries, which carry no
	// statistic at all.
	LeaveOnly bool
}

// ComputeStatistic derives the monthly summary. Returns nil for leave-only
// queries.
func ComputeStatistic(in StatisticInput) *worklog.Statistic {
	if in.LeaveOnly {
		return nil
	}

	var toBeWorkedOut, overtime float64
	if in.UserRequested {
		toBeWorkedOut = RequiredHours(in.Month, in.HolidayWeekdayCount, in.ApprovedLeaveDays)
		overtime = Overtime(in.WorkedOutHours, toBeWorkedOut)
	}

	stat := &worklog.Statistic{
		WorkedOut: FormatHours(in.WorkedOutHours),
	}
	if !in.ProjectScoped {
		toBe := FormatHours(toBeWorkedOut)
		over := FormatHours(overtime)
		stat.ToBeWorkedOut = &toBe
		stat.Overtime = &over
	}
	return stat
}
