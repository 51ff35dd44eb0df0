package worklog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dates are normalized to noon UTC so that day boundaries survive timezone
// conversion on either side of UTC.
const normalizedHour = 12

// NormalizeDate pins t to its calendar day at noon UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), normalizedHour, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date and pins it to noon UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q", s)
	}
	return NormalizeDate(t), nil
}

// MonthWindow returns the half-open window covering t's calendar month.
func MonthWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, normalizedHour, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// DayWindow returns the half-open window covering t's calendar day.
func DayWindow(t time.Time) (start, end time.Time) {
	start = NormalizeDate(t)
	return start, start.AddDate(0, 0, 1)
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// WeekdayCount counts the weekdays in t's calendar month.
func WeekdayCount(t time.Time) int {
	start, end := MonthWindow(t)
	count := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) {
			count++
		}
	}
	return count
}

// HoursInMonth returns the total calendar hours of t's month, the baseline
// the statistics subtract non-working time from.
func HoursInMonth(t time.Time) float64 {
	start, end := MonthWindow(t)
	return float64(end.Sub(start).Hours())
}

// DayKey serializes t's calendar day canonically.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// RoundHalf rounds hours to the nearest half hour.
func RoundHalf(hours float64) float64 {
	rounded := hours * 2
	if rounded >= 0 {
		rounded += 0.5
	} else {
		rounded -= 0.5
	}
	return float64(int(rounded)) / 2
}

// FormatHours renders fractional hours as H:MM, e.g. 7.5 -> "7:30". The
// output round-trips through ParseClock.
func FormatHours(hours float64) string {
	sign := ""
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	totalMinutes := int(hours*60 + 0.5)
	return fmt.Sprintf("%s%d:%02d", sign, totalMinutes/60, totalMinutes%60)
}

// ParseClock parses an H:MM duration into fractional hours.
func ParseClock(s string) (float64, error) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed duration %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed duration %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("malformed duration %q", s)
	}
	hours := float64(h) + float64(m)/60
	if neg {
		hours = -hours
	}
	return hours, nil
}

// ClockToMinutes parses an H:MM duration into whole minutes.
func ClockToMinutes(s string) (int, error) {
	hours, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return int(hours*60 + 0.5), nil
}
