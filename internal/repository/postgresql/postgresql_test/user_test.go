package postgresql_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(suffix string) user.User {
	slack := "@jane" + suffix
	return user.User{
		Name:           "Jane",
		LastName:       "Doe",
		Email:          fmt.Sprintf("jane%s@example.com", suffix),
		PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
		DOB:            time.Date(1991, time.February, 20, 12, 0, 0, 0, time.UTC),
		Phone:          "+1234567890" + suffix,
		Position:       user.PositionDeveloper,
		Role:           user.RoleUser,
		Slack:          &slack,
		StartDate:      time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
		EvaluationDate: time.Date(2024, time.September, 1, 12, 0, 0, 0, time.UTC),
		IsShown:        true,
	}
}

func TestUserRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewUserRepository(setup.DB)

	t.Run("create and get", func(t *testing.T) {
		created, err := repo.Create(ctx, testUser("1"))
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, got.Email)
		assert.True(t, got.Employed())
	})

	t.Run("duplicate email", func(t *testing.T) {
		u := testUser("2")
		_, err := repo.Create(ctx, u)
		require.NoError(t, err)

		u.Phone = "+19998887766"
		_, err = repo.Create(ctx, u)
		assert.ErrorIs(t, err, user.ErrEmailExists)
	})

	t.Run("get by email", func(t *testing.T) {
		created, err := repo.Create(ctx, testUser("3"))
		require.NoError(t, err)

		got, err := repo.GetByEmail(ctx, created.Email)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("set end date", func(t *testing.T) {
		created, err := repo.Create(ctx, testUser("4"))
		require.NoError(t, err)

		endDate := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, repo.SetEndDate(ctx, created.ID, endDate))

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, got.Employed())
		assert.False(t, got.IsShown)
	})

	t.Run("owner slack handles", func(t *testing.T) {
		owner := testUser("5")
		owner.Position = user.PositionOwner
		_, err := repo.Create(ctx, owner)
		require.NoError(t, err)

		handles, err := repo.OwnerSlackHandles(ctx)
		require.NoError(t, err)
		assert.Contains(t, handles, *owner.Slack)
	})
}
