package worklog

import (
	"testing"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/domain/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.February, d, 12, 0, 0, 0, time.UTC)
}

func timelogRec(d, minutes int) worklog.Record {
	return worklog.Record{Kind: worklog.KindTimelog, Date: day(d), Minutes: &minutes}
}

func vacationRec(d int, status vacation.Status) worklog.Record {
	return worklog.Record{Kind: worklog.KindVacation, Date: day(d), Status: &status}
}

func TestReduceSumsAndRoundsPerDay(t *testing.T) {
	// 6h50m + 1h05m = 7h55m; rounds up to 8.0 for the day but the total
	// keeps the exact value.
	logs, workedOut := Reduce([]worklog.Record{
		timelogRec(3, 410),
		timelogRec(3, 65),
	})

	require.Len(t, logs, 1)
	entry := logs["2026-02-03"]
	require.NotNil(t, entry.Timelogs)
	assert.Equal(t, 8.0, *entry.Timelogs)
	assert.InDelta(t, 475.0/60, workedOut, 1e-9)
}

func TestReduceSparseMap(t *testing.T) {
	logs, _ := Reduce([]worklog.Record{
		timelogRec(3, 480),
		timelogRec(17, 240),
	})

	assert.Len(t, logs, 2)
	assert.Contains(t, logs, "2026-02-03")
	assert.Contains(t, logs, "2026-02-17")
	assert.NotContains(t, logs, "2026-02-04")
}

func TestReduceCountsOnlyApprovedLeave(t *testing.T) {
	logs, _ := Reduce([]worklog.Record{
		vacationRec(5, vacation.StatusApproved),
		vacationRec(5, vacation.StatusPending),
		vacationRec(5, vacation.StatusRejected),
	})

	require.Len(t, logs, 1)
	entry := logs["2026-02-05"]
	require.NotNil(t, entry.Vacations)
	assert.Equal(t, 1, *entry.Vacations)
}

func TestReducePendingOnlyDayIsOmitted(t *testing.T) {
	logs, _ := Reduce([]worklog.Record{
		vacationRec(5, vacation.StatusPending),
	})

	assert.Empty(t, logs)
}

func TestReduceMixedDay(t *testing.T) {
	name := "Independence Day"
	full := "Jane Doe"
	records := []worklog.Record{
		timelogRec(10, 240),
		vacationRec(10, vacation.StatusApproved),
		{Kind: worklog.KindHoliday, Date: day(10), Name: &name},
		{Kind: worklog.KindBirthday, Date: day(10), FullName: &full},
	}

	logs, workedOut := Reduce(records)

	require.Len(t, logs, 1)
	entry := logs["2026-02-10"]
	require.NotNil(t, entry.Timelogs)
	assert.Equal(t, 4.0, *entry.Timelogs)
	require.NotNil(t, entry.Vacations)
	assert.Equal(t, 1, *entry.Vacations)
	assert.Equal(t, []string{"Independence Day"}, entry.Holidays)
	require.NotNil(t, entry.Birthdays)
	assert.True(t, *entry.Birthdays)
	assert.InDelta(t, 4.0, workedOut, 1e-9)
}

func TestReduceIsDeterministic(t *testing.T) {
	records := []worklog.Record{
		timelogRec(1, 410),
		timelogRec(1, 65),
		timelogRec(2, 480),
		vacationRec(3, vacation.StatusApproved),
	}

	first, firstTotal := Reduce(records)
	second, secondTotal := Reduce(records)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)
}

func TestReduceEmptyInput(t *testing.T) {
	logs, workedOut := Reduce(nil)

	assert.Empty(t, logs)
	assert.Zero(t, workedOut)
}
