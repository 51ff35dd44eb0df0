package postgresql

import (
	"context"
	"strconv"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/domain/worklog"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
)

// worklogRepositoryImpl projects rows from the timelogs, vacations, holidays
// and users tables into the shapes the aggregation engine consumes. It never
// writes.
type worklogRepositoryImpl struct {
	db *database.DB
}

func NewWorklogRepository(db *database.DB) worklog.Repository {
	return &worklogRepositoryImpl{db: db}
}

// Timelogs implements worklog.Repository.
func (r *worklogRepositoryImpl) Timelogs(ctx context.Context, from, to time.Time, userID, projectID *string) ([]worklog.TimelogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT date, minutes FROM timelogs WHERE date >= $1 AND date < $2`
	args := []interface{}{from, to}
	if userID != nil {
		args = append(args, *userID)
		query += ` AND user_id = $` + strconv.Itoa(len(args))
	}
	if projectID != nil {
		args = append(args, *projectID)
		query += ` AND project_id = $` + strconv.Itoa(len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []worklog.TimelogEntry
	for rows.Next() {
		var e worklog.TimelogEntry
		if err := rows.Scan(&e.Date, &e.Minutes); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Vacations implements worklog.Repository.
func (r *worklogRepositoryImpl) Vacations(ctx context.Context, from, to time.Time, userID *string, vtype *vacation.Type) ([]worklog.VacationEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT date, status FROM vacations WHERE date >= $1 AND date < $2`
	args := []interface{}{from, to}
	if userID != nil {
		args = append(args, *userID)
		query += ` AND user_id = $` + strconv.Itoa(len(args))
	}
	if vtype != nil {
		args = append(args, *vtype)
		query += ` AND type = $` + strconv.Itoa(len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []worklog.VacationEntry
	for rows.Next() {
		var e worklog.VacationEntry
		if err := rows.Scan(&e.Date, &e.Status); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Holidays implements worklog.Repository.
func (r *worklogRepositoryImpl) Holidays(ctx context.Context, from, to time.Time) ([]worklog.HolidayEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT date, name FROM holidays WHERE date >= $1 AND date < $2`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []worklog.HolidayEntry
	for rows.Next() {
		var e worklog.HolidayEntry
		if err := rows.Scan(&e.Date, &e.Name); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Birthdays implements worklog.Repository. Only shown, still-employed users
// are projected.
func (r *worklogRepositoryImpl) Birthdays(ctx context.Context, month time.Month, day *int) ([]worklog.Birthday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT dob, name || ' ' || last_name
		FROM users
		WHERE end_date IS NULL AND is_shown AND EXTRACT(MONTH FROM dob) = $1
	`
	args := []interface{}{int(month)}
	if day != nil {
		args = append(args, *day)
		query += ` AND EXTRACT(DAY FROM dob) = $` + strconv.Itoa(len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var birthdays []worklog.Birthday
	for rows.Next() {
		var b worklog.Birthday
		if err := rows.Scan(&b.Date, &b.FullName); err != nil {
			return nil, err
		}
		birthdays = append(birthdays, b)
	}
	return birthdays, rows.Err()
}

// TimelogDetails implements worklog.Repository.
func (r *worklogRepositoryImpl) TimelogDetails(ctx context.Context, from, to time.Time, userID, projectID *string) ([]worklog.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.date, t.minutes, t.description,
			u.id, u.name, u.last_name, u.avatar, u.slack,
			p.id, p.name
		FROM timelogs t
		JOIN users u ON u.id = t.user_id
		JOIN projects p ON p.id = t.project_id
		WHERE t.date >= $1 AND t.date < $2
	`
	args := []interface{}{from, to}
	if userID != nil {
		args = append(args, *userID)
		query += ` AND t.user_id = $` + strconv.Itoa(len(args))
	}
	if projectID != nil {
		args = append(args, *projectID)
		query += ` AND t.project_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY t.created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []worklog.Record
	for rows.Next() {
		rec := worklog.Record{Kind: worklog.KindTimelog}
		var minutes int
		var desc string
		var u worklog.UserRef
		var p worklog.ProjectRef
		err := rows.Scan(
			&rec.ID, &rec.Date, &minutes, &desc,
			&u.ID, &u.Name, &u.LastName, &u.Avatar, &u.Slack,
			&p.ID, &p.Name,
		)
		if err != nil {
			return nil, err
		}
		rec.Minutes = &minutes
		rec.Desc = &desc
		rec.User = &u
		rec.Project = &p
		records = append(records, rec)
	}
	return records, rows.Err()
}

// VacationDetails implements worklog.Repository.
func (r *worklogRepositoryImpl) VacationDetails(ctx context.Context, from, to time.Time, userID *string, vtype *vacation.Type) ([]worklog.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.date, v.type, v.status, v.description,
			u.id, u.name, u.last_name, u.avatar, u.slack
		FROM vacations v
		JOIN users u ON u.id = v.user_id
		WHERE v.date >= $1 AND v.date < $2
	`
	args := []interface{}{from, to}
	if userID != nil {
		args = append(args, *userID)
		query += ` AND v.user_id = $` + strconv.Itoa(len(args))
	}
	if vtype != nil {
		args = append(args, *vtype)
		query += ` AND v.type = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY v.created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []worklog.Record
	for rows.Next() {
		rec := worklog.Record{Kind: worklog.KindVacation}
		var vtype vacation.Type
		var status vacation.Status
		var desc string
		var u worklog.UserRef
		err := rows.Scan(
			&rec.ID, &rec.Date, &vtype, &status, &desc,
			&u.ID, &u.Name, &u.LastName, &u.Avatar, &u.Slack,
		)
		if err != nil {
			return nil, err
		}
		rec.Type = &vtype
		rec.Status = &status
		rec.Desc = &desc
		rec.User = &u
		records = append(records, rec)
	}
	return records, rows.Err()
}
