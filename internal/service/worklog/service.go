package worklog

import (
	"context"
	"fmt"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/domain/worklog"
	"golang.org/x/sync/errgroup"
)

// Service is the log aggregation and work-statistics engine. It holds no
// state beyond its collaborators; every result is recomputed per request.
type Service struct {
	repo worklog.Repository
}

func NewService(repo worklog.Repository) *Service {
	return &Service{repo: repo}
}

// fetched is the join point of the four independent source reads.
type fetched struct {
	timelogs  []worklog.TimelogEntry
	vacations []worklog.VacationEntry
	holidays  []worklog.HolidayEntry
	birthdays []worklog.Birthday
}

// FindLogs aggregates a full calendar month into the per-day view plus the
// monthly work-hour statistic.
func (s *Service) FindLogs(ctx context.Context, q worklog.Query) (worklog.LogsResponse, error) {
	if err := q.Validate(); err != nil {
		return worklog.LogsResponse{}, err
	}

	first := NormalizeDate(q.First)
	from, to := MonthWindow(first)

	// The four source reads are independent; fan out and join before the
	// reduction. One failed source fails the whole aggregation.
	var result fetched
	g, gctx := errgroup.WithContext(ctx)

	if q.LogType == worklog.LogTypeAll || q.LogType == worklog.LogTypeTimelogs {
		g.Go(func() error {
			entries, err := s.repo.Timelogs(gctx, from, to, q.UserID, q.ProjectID)
			if err != nil {
				return fmt.Errorf("fetch timelogs: %w", err)
			}
			result.timelogs = entries
			return nil
		})
	}
	if q.LogType == worklog.LogTypeAll || q.LogType == worklog.LogTypeVacations {
		g.Go(func() error {
			entries, err := s.repo.Vacations(gctx, from, to, q.UserID, q.VacationType)
			if err != nil {
				return fmt.Errorf("fetch vacations: %w", err)
			}
			result.vacations = entries
			return nil
		})
	}
	g.Go(func() error {
		entries, err := s.repo.Holidays(gctx, from, to)
		if err != nil {
			return fmt.Errorf("fetch holidays: %w", err)
		}
		result.holidays = entries
		return nil
	})
	g.Go(func() error {
		birthdays, err := s.repo.Birthdays(gctx, first.Month(), nil)
		if err != nil {
			return fmt.Errorf("fetch birthdays: %w", err)
		}
		result.birthdays = birthdays
		return nil
	})

	if err := g.Wait(); err != nil {
		return worklog.LogsResponse{}, err
	}

	records := tagRecords(result, first.Year())
	logs, workedOut := Reduce(records)

	holidayWeekdays := 0
	for _, h := range result.holidays {
		if IsWeekday(h.Date) {
			holidayWeekdays++
		}
	}
	approvedLeaveDays := 0
	for _, v := range result.vacations {
		if v.Status == vacation.StatusApproved {
			approvedLeaveDays++
		}
	}

	statistic := ComputeStatistic(StatisticInput{
		Month:               first,
		WorkedOutHours:      workedOut,
		HolidayWeekdayCount: holidayWeekdays,
		ApprovedLeaveDays:   approvedLeaveDays,
		UserRequested:       q.UserID != nil,
		ProjectScoped:       q.ProjectID != nil,
		LeaveOnly:           q.LogType == worklog.LogTypeVacations,
	})

	return worklog.LogsResponse{Logs: logs, Statistic: statistic}, nil
}

// FindLogsByDate returns the flat record list for a single calendar day,
// with joined user/project details for drill-down rendering.
func (s *Service) FindLogsByDate(ctx context.Context, q worklog.Query) ([]worklog.Record, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	first := NormalizeDate(q.First)
	from, to := DayWindow(first)

	var (
		timelogs  []worklog.Record
		vacations []worklog.Record
		holidays  []worklog.HolidayEntry
		birthdays []worklog.Birthday
	)
	g, gctx := errgroup.WithContext(ctx)

	if q.LogType == worklog.LogTypeAll || q.LogType == worklog.LogTypeTimelogs {
		g.Go(func() error {
			var err error
			timelogs, err = s.repo.TimelogDetails(gctx, from, to, q.UserID, q.ProjectID)
			if err != nil {
				return fmt.Errorf("fetch timelogs: %w", err)
			}
			return nil
		})
	}
	if q.LogType == worklog.LogTypeAll || q.LogType == worklog.LogTypeVacations {
		g.Go(func() error {
			var err error
			vacations, err = s.repo.VacationDetails(gctx, from, to, q.UserID, q.VacationType)
			if err != nil {
				return fmt.Errorf("fetch vacations: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		holidays, err = s.repo.Holidays(gctx, from, to)
		if err != nil {
			return fmt.Errorf("fetch holidays: %w", err)
		}
		return nil
	})
	if q.LogType == worklog.LogTypeAll || q.LogType == worklog.LogTypeBirthdays {
		g.Go(func() error {
			day := first.Day()
			var err error
			birthdays, err = s.repo.Birthdays(gctx, first.Month(), &day)
			if err != nil {
				return fmt.Errorf("fetch birthdays: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]worklog.Record, 0, len(timelogs)+len(vacations)+len(holidays)+len(birthdays))
	records = append(records, timelogs...)
	records = append(records, vacations...)
	for _, h := range holidays {
		records = append(records, holidayRecord(h))
	}
	for _, b := range birthdays {
		records = append(records, birthdayRecord(b, first.Year()))
	}
	return records, nil
}

// tagRecords converts the fetched projections into the tagged union the
// reducer folds. Birthday dates are re-anchored to the query year here.
func tagRecords(f fetched, year int) []worklog.Record {
	records := make([]worklog.Record, 0,
		len(f.timelogs)+len(f.vacations)+len(f.holidays)+len(f.birthdays))

	for _, t := range f.timelogs {
		minutes := t.Minutes
		records = append(records, worklog.Record{
			Kind:    worklog.KindTimelog,
			Date:    t.Date,
			Minutes: &minutes,
		})
	}
	for _, v := range f.vacations {
		status := v.Status
		records = append(records, worklog.Record{
			Kind:   worklog.KindVacation,
			Date:   v.Date,
			Status: &status,
		})
	}
	for _, h := range f.holidays {
		records = append(records, holidayRecord(h))
	}
	for _, b := range f.birthdays {
		records = append(records, birthdayRecord(b, year))
	}
	return records
}

func holidayRecord(h worklog.HolidayEntry) worklog.Record {
	name := h.Name
	return worklog.Record{
		Kind: worklog.KindHoliday,
		Date: h.Date,
		Name: &name,
	}
}

// birthdayRecord re-anchors the stored birth date to the query year.
func birthdayRecord(b worklog.Birthday, year int) worklog.Record {
	fullName := b.FullName
	date := time.Date(year, b.Date.Month(), b.Date.Day(),
		b.Date.Hour(), b.Date.Minute(), 0, 0, time.UTC)
	return worklog.Record{
		Kind:     worklog.KindBirthday,
		Date:     date,
		FullName: &fullName,
	}
}
