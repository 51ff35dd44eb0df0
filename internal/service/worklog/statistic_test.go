package worklog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredHours(t *testing.T) {
	// September 2026: 30 days, 22 weekdays.
	september := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	assert.InDelta(t, 30*24-22*8, RequiredHours(september, 0, 0), 1e-9)

	// A weekday holiday and an approved leave day each shave 8 hours.
	assert.InDelta(t, 30*24-22*8-8, RequiredHours(september, 1, 0), 1e-9)
	assert.InDelta(t, 30*24-22*8-8-16, RequiredHours(september, 1, 2), 1e-9)
}

func TestOvertime(t *testing.T) {
	// Surplus is multiplied by 1.5, deficit is reported raw.
	assert.InDelta(t, 30, Overtime(180, 160), 1e-9)
	assert.InDelta(t, -20, Overtime(140, 160), 1e-9)
	assert.InDelta(t, 0, Overtime(160, 160), 1e-9)
}

func TestComputeStatisticForUser(t *testing.T) {
	september := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	stat := ComputeStatistic(StatisticInput{
		Month:          september,
		WorkedOutHours: 100,
		UserRequested:  true,
	})

	require.NotNil(t, stat)
	assert.Equal(t, "100:00", stat.WorkedOut)
	require.NotNil(t, stat.ToBeWorkedOut)
	assert.Equal(t, FormatHours(RequiredHours(september, 0, 0)), *stat.ToBeWorkedOut)
	require.NotNil(t, stat.Overtime)
}

func TestComputeStatisticWithoutUser(t *testing.T) {
	stat := ComputeStatistic(StatisticInput{
		Month:          time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
		WorkedOutHours: 42.5,
	})

	require.NotNil(t, stat)
	assert.Equal(t, "42:30", stat.WorkedOut)
	// No user requested: requirement and overtime are zero, not null.
	require.NotNil(t, stat.ToBeWorkedOut)
	assert.Equal(t, "0:00", *stat.ToBeWorkedOut)
	require.NotNil(t, stat.Overtime)
	assert.Equal(t, "0:00", *stat.Overtime)
}

func TestComputeStatisticProjectScoped(t *testing.T) {
	stat := ComputeStatistic(StatisticInput{
		Month:          time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
		WorkedOutHours: 10,
		ProjectScoped:  true,
	})

	require.NotNil(t, stat)
	assert.Equal(t, "10:00", stat.WorkedOut)
	assert.Nil(t, stat.ToBeWorkedOut)
	assert.Nil(t, stat.Overtime)
}

func TestComputeStatisticLeaveOnly(t *testing.T) {
	stat := ComputeStatistic(StatisticInput{
		Month:     time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
		LeaveOnly: true,
	})

	assert.Nil(t, stat)
}
