package worklog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/domain/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorklogRepo serves canned projections and records which sources were
// touched.
type fakeWorklogRepo struct {
	timelogs  []worklog.TimelogEntry
	vacations []worklog.VacationEntry
	holidays  []worklog.HolidayEntry
	birthdays []worklog.Birthday

	timelogErr error

	fetchedTimelogs  bool
	fetchedVacations bool
}

func (f *fakeWorklogRepo) Timelogs(_ context.Context, _, _ time.Time, _, _ *string) ([]worklog.TimelogEntry, error) {
	f.fetchedTimelogs = true
	if f.timelogErr != nil {
		return nil, f.timelogErr
	}
	return f.timelogs, nil
}

func (f *fakeWorklogRepo) Vacations(_ context.Context, _, _ time.Time, _ *string, _ *vacation.Type) ([]worklog.VacationEntry, error) {
	f.fetchedVacations = true
	return f.vacations, nil
}

func (f *fakeWorklogRepo) Holidays(_ context.Context, _, _ time.Time) ([]worklog.HolidayEntry, error) {
	return f.holidays, nil
}

func (f *fakeWorklogRepo) Birthdays(_ context.Context, _ time.Month, _ *int) ([]worklog.Birthday, error) {
	return f.birthdays, nil
}

func (f *fakeWorklogRepo) TimelogDetails(_ context.Context, _, _ time.Time, _, _ *string) ([]worklog.Record, error) {
	return nil, nil
}

func (f *fakeWorklogRepo) VacationDetails(_ context.Context, _, _ time.Time, _ *string, _ *vacation.Type) ([]worklog.Record, error) {
	return nil, nil
}

func TestFindLogsAggregatesMonth(t *testing.T) {
	userID := "6f1f9a52-0b08-4d1e-90cb-9cb5a1b0a001"
	repo := &fakeWorklogRepo{
		timelogs: []worklog.TimelogEntry{
			{Date: day(3), Minutes: 410},
			{Date: day(3), Minutes: 65},
			{Date: day(4), Minutes: 480},
		},
		vacations: []worklog.VacationEntry{
			{Date: day(5), Status: vacation.StatusApproved},
			{Date: day(6), Status: vacation.StatusPending},
		},
		holidays: []worklog.HolidayEntry{
			// February 23 2026 is a Monday.
			{Date: day(23), Name: "Defender Day"},
		},
	}
	svc := NewService(repo)

	resp, err := svc.FindLogs(context.Background(), worklog.Query{
		First:   day(1),
		LogType: worklog.LogTypeAll,
		UserID:  &userID,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Logs["2026-02-03"].Timelogs)
	assert.Equal(t, 8.0, *resp.Logs["2026-02-03"].Timelogs)
	require.NotNil(t, resp.Logs["2026-02-04"].Timelogs)
	assert.Equal(t, 8.0, *resp.Logs["2026-02-04"].Timelogs)
	require.NotNil(t, resp.Logs["2026-02-05"].Vacations)
	assert.Equal(t, []string{"Defender Day"}, resp.Logs["2026-02-23"].Holidays)

	// Pending leave contributes no day entry.
	assert.NotContains(t, resp.Logs, "2026-02-06")

	require.NotNil(t, resp.Statistic)
	// 475 + 480 minutes worked in total.
	assert.Equal(t, FormatHours(955.0/60), resp.Statistic.WorkedOut)
	require.NotNil(t, resp.Statistic.ToBeWorkedOut)
	// One weekday holiday and one approved leave day reduce the requirement.
	expected := RequiredHours(day(1), 1, 1)
	assert.Equal(t, FormatHours(expected), *resp.Statistic.ToBeWorkedOut)
}

func TestFindLogsVacationsOnly(t *testing.T) {
	repo := &fakeWorklogRepo{
		vacations: []worklog.VacationEntry{{Date: day(5), Status: vacation.StatusApproved}},
	}
	svc := NewService(repo)

	resp, err := svc.FindLogs(context.Background(), worklog.Query{
		First:   day(1),
		LogType: worklog.LogTypeVacations,
	})
	require.NoError(t, err)

	assert.False(t, repo.fetchedTimelogs)
	assert.True(t, repo.fetchedVacations)
	assert.Nil(t, resp.Statistic)
	assert.Contains(t, resp.Logs, "2026-02-05")
}

func TestFindLogsRejectsMalformedIDs(t *testing.T) {
	svc := NewService(&fakeWorklogRepo{})

	bad := "not-a-uuid"
	_, err := svc.FindLogs(context.Background(), worklog.Query{
		First:   day(1),
		LogType: worklog.LogTypeAll,
		UserID:  &bad,
	})
	assert.ErrorIs(t, err, worklog.ErrInvalidUserID)

	_, err = svc.FindLogs(context.Background(), worklog.Query{
		First:     day(1),
		LogType:   worklog.LogTypeAll,
		ProjectID: &bad,
	})
	assert.ErrorIs(t, err, worklog.ErrInvalidProjectID)
}

func TestFindLogsPropagatesSourceFailure(t *testing.T) {
	repo := &fakeWorklogRepo{timelogErr: errors.New("connection reset")}
	svc := NewService(repo)

	_, err := svc.FindLogs(context.Background(), worklog.Query{
		First:   day(1),
		LogType: worklog.LogTypeAll,
	})
	assert.Error(t, err)
}

func TestFindLogsReanchorsBirthdays(t *testing.T) {
	repo := &fakeWorklogRepo{
		birthdays: []worklog.Birthday{
			{Date: time.Date(1991, time.February, 20, 12, 0, 0, 0, time.UTC), FullName: "Jane Doe"},
		},
	}
	svc := NewService(repo)

	resp, err := svc.FindLogs(context.Background(), worklog.Query{
		First:   day(1),
		LogType: worklog.LogTypeBirthdays,
	})
	require.NoError(t, err)

	entry, ok := resp.Logs["2026-02-20"]
	require.True(t, ok, "birthday should land in the queried year")
	require.NotNil(t, entry.Birthdays)
	assert.True(t, *entry.Birthdays)
}

func TestFindLogsByDateReturnsFlatRecords(t *testing.T) {
	repo := &fakeWorklogRepo{
		holidays: []worklog.HolidayEntry{{Date: day(23), Name: "Defender Day"}},
		birthdays: []worklog.Birthday{
			{Date: time.Date(1990, time.February, 23, 12, 0, 0, 0, time.UTC), FullName: "John Roe"},
		},
	}
	svc := NewService(repo)

	records, err := svc.FindLogsByDate(context.Background(), worklog.Query{
		First:   day(23),
		LogType: worklog.LogTypeAll,
	})
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, worklog.KindHoliday, records[0].Kind)
	assert.Equal(t, worklog.KindBirthday, records[1].Kind)
	assert.Equal(t, 2026, records[1].Date.Year())
	require.NotNil(t, records[1].FullName)
	assert.Equal(t, "John Roe", *records[1].FullName)
}
