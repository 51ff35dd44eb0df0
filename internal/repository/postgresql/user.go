package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, name, last_name, avatar, email, password_hash, dob, phone, position, role,
	slack, github, skype, english_level, start_date, end_date, vacation_count, evaluation_date,
	salary, is_shown, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.LastName, &u.Avatar, &u.Email, &u.PasswordHash, &u.DOB, &u.Phone,
		&u.Position, &u.Role, &u.Slack, &u.GitHub, &u.Skype, &u.EnglishLevel, &u.StartDate,
		&u.EndDate, &u.VacationCount, &u.EvaluationDate, &u.Salary, &u.IsShown,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.Repository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, name, last_name, avatar, email, password_hash, dob, phone, position, role,
			slack, github, skype, english_level, start_date, vacation_count, evaluation_date,
			salary, is_shown
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17,
			$18, $19
		)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		uuid.NewString(), u.Name, u.LastName, u.Avatar, u.Email, u.PasswordHash, u.DOB, u.Phone,
		u.Position, u.Role, u.Slack, u.GitHub, u.Skype, u.EnglishLevel, u.StartDate,
		u.VacationCount, u.EvaluationDate, u.Salary, u.IsShown,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "phone") {
				return user.User{}, user.ErrPhoneExists
			}
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// List implements user.Repository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY name, last_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update implements user.Repository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $1, last_name = $2, avatar = $3, phone = $4, slack = $5, github = $6,
			skype = $7, english_level = $8, vacation_count = $9, evaluation_date = $10,
			salary = $11, is_shown = $12, updated_at = NOW()
		WHERE id = $13
	`

	tag, err := q.Exec(ctx, query,
		u.Name, u.LastName, u.Avatar, u.Phone, u.Slack, u.GitHub,
		u.Skype, u.EnglishLevel, u.VacationCount, u.EvaluationDate,
		u.Salary, u.IsShown, u.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrPhoneExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements user.Repository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetEndDate implements user.Repository.
func (r *userRepositoryImpl) SetEndDate(ctx context.Context, id string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET end_date = $1, is_shown = FALSE, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, endDate, id)
	if err != nil {
		return fmt.Errorf("failed to set end date: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// OwnerSlackHandles implements user.Repository.
func (r *userRepositoryImpl) OwnerSlackHandles(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT slack FROM users
		WHERE position = $1 AND slack IS NOT NULL AND end_date IS NULL
	`

	rows, err := q.Query(ctx, query, user.PositionOwner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var handles []string
	for rows.Next() {
		var handle string
		if err := rows.Scan(&handle); err != nil {
			return nil, err
		}
		handles = append(handles, handle)
	}
	return handles, rows.Err()
}
