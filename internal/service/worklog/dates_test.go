package worklog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	late := time.Date(2026, time.March, 14, 23, 50, 12, 0, time.UTC)
	normalized := NormalizeDate(late)

	assert.Equal(t, time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC), normalized)

	// Normalizing twice is a no-op.
	assert.Equal(t, normalized, NormalizeDate(normalized))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-02-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.February, 7, 12, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("07/02/2026")
	assert.Error(t, err)
}

func TestMonthWindow(t *testing.T) {
	from, to := MonthWindow(time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC), to)
}

func TestDayWindow(t *testing.T) {
	from, to := DayWindow(time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC), to)
}

func TestWeekdayCount(t *testing.T) {
	// September 2026: 30 days, 8 weekend days.
	assert.Equal(t, 22, WeekdayCount(time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)))
	// February 2026 has 20 weekdays.
	assert.Equal(t, 20, WeekdayCount(time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)))
}

func TestHoursInMonth(t *testing.T) {
	assert.Equal(t, float64(30*24), HoursInMonth(time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, float64(28*24), HoursInMonth(time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)))
}

func TestRoundHalf(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7.9166, 8.0},
		{7.75, 8.0},
		{7.74, 7.5},
		{7.25, 7.5},
		{7.24, 7.0},
		{0, 0},
		{-7.9, -8.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundHalf(tt.in), 1e-9, "RoundHalf(%v)", tt.in)
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "7:30", FormatHours(7.5))
	assert.Equal(t, "0:00", FormatHours(0))
	assert.Equal(t, "160:00", FormatHours(160))
	assert.Equal(t, "-20:00", FormatHours(-20))
	assert.Equal(t, "30:00", FormatHours(30))
}

func TestFormatHoursRoundTrip(t *testing.T) {
	for _, s := range []string{"7:30", "0:00", "160:00", "-20:00", "8:05", "-0:30"} {
		hours, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatHours(hours))
	}
}

func TestParseClock(t *testing.T) {
	hours, err := ParseClock("6:50")
	require.NoError(t, err)
	assert.InDelta(t, 6+50.0/60, hours, 1e-9)

	for _, s := range []string{"6", "6:5", "6:75", "x:30", ""} {
		_, err := ParseClock(s)
		assert.Error(t, err, "ParseClock(%q)", s)
	}
}

func TestClockToMinutes(t *testing.T) {
	minutes, err := ClockToMinutes("6:50")
	require.NoError(t, err)
	assert.Equal(t, 410, minutes)

	minutes, err = ClockToMinutes("1:05")
	require.NoError(t, err)
	assert.Equal(t, 65, minutes)
}
