package worklog

import (
	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/domain/worklog"
)

// dayBucket accumulates one calendar day before the final rounding pass.
type dayBucket struct {
	minutes       []int
	approvedLeave int
	holidayNames  []string
	birthday      bool
}

// Reduce folds the tagged records of all four sources into a sparse mapping
// keyed by calendar day, and returns the total worked hours across the
// window before any per-day rounding.
//
// Per-day worked time is summed at minute granularity and rounded once per
// bucket to the nearest half hour; the running total stays unrounded so the
// monthly statistic does not compound rounding error. Only approved leave
// counts as a day off. Days without any record are absent from the result.
func Reduce(records []worklog.Record) (map[string]worklog.DayEntry, float64) {
	buckets := make(map[string]*dayBucket)

	for _, rec := range records {
		key := DayKey(rec.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &dayBucket{}
			buckets[key] = bucket
		}

		switch rec.Kind {
		case worklog.KindTimelog:
			if rec.Minutes != nil {
				bucket.minutes = append(bucket.minutes, *rec.Minutes)
			}
		case worklog.KindVacation:
			if rec.Status != nil && *rec.Status == vacation.StatusApproved {
				bucket.approvedLeave++
			}
		case worklog.KindHoliday:
			if rec.Name != nil {
				bucket.holidayNames = append(bucket.holidayNames, *rec.Name)
			}
		case worklog.KindBirthday:
			bucket.birthday = true
		}
	}

	result := make(map[string]worklog.DayEntry, len(buckets))
	var workedOutHours float64

	for key, bucket := range buckets {
		var entry worklog.DayEntry

		if len(bucket.minutes) > 0 {
			total := 0
			for _, m := range bucket.minutes {
				total += m
			}
			hours := float64(total) / 60
			workedOutHours += hours
			rounded := RoundHalf(hours)
			entry.Timelogs = &rounded
		}
		if bucket.approvedLeave > 0 {
			count := bucket.approvedLeave
			entry.Vacations = &count
		}
		if len(bucket.holidayNames) > 0 {
			entry.Holidays = bucket.holidayNames
		}
		if bucket.birthday {
			present := true
			entry.Birthdays = &present
		}

		if !entry.Empty() {
			result[key] = entry
		}
	}

	return result, workedOutHours
}
