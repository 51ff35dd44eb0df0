package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/crewlog/crewlog-backend/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorklogRepositoryBirthdays(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	userRepo := postgresql.NewUserRepository(setup.DB)
	repo := postgresql.NewWorklogRepository(setup.DB)

	active := testUser("b1")
	active.Name = "Active"
	active.DOB = time.Date(1991, time.February, 20, 12, 0, 0, 0, time.UTC)
	_, err := userRepo.Create(ctx, active)
	require.NoError(t, err)

	terminated := testUser("b2")
	terminated.Name = "Gone"
	terminated.DOB = time.Date(1988, time.February, 20, 12, 0, 0, 0, time.UTC)
	createdGone, err := userRepo.Create(ctx, terminated)
	require.NoError(t, err)
	require.NoError(t, userRepo.SetEndDate(ctx, createdGone.ID,
		time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)))

	hidden := testUser("b3")
	hidden.Name = "Hidden"
	hidden.DOB = time.Date(1994, time.February, 20, 12, 0, 0, 0, time.UTC)
	hidden.IsShown = false
	_, err = userRepo.Create(ctx, hidden)
	require.NoError(t, err)

	march := testUser("b4")
	march.Name = "March"
	march.DOB = time.Date(1990, time.March, 5, 12, 0, 0, 0, time.UTC)
	_, err = userRepo.Create(ctx, march)
	require.NoError(t, err)

	t.Run("month filter", func(t *testing.T) {
		birthdays, err := repo.Birthdays(ctx, time.February, nil)
		require.NoError(t, err)
		require.Len(t, birthdays, 1)
		assert.Equal(t, "Active Doe", birthdays[0].FullName)
		assert.Equal(t, 1991, birthdays[0].Date.Year())
	})

	t.Run("terminated and hidden excluded", func(t *testing.T) {
		birthdays, err := repo.Birthdays(ctx, time.February, nil)
		require.NoError(t, err)
		for _, b := range birthdays {
			assert.NotEqual(t, "Gone Doe", b.FullName)
			assert.NotEqual(t, "Hidden Doe", b.FullName)
		}
	})

	t.Run("day filter", func(t *testing.T) {
		day := 20
		birthdays, err := repo.Birthdays(ctx, time.February, &day)
		require.NoError(t, err)
		require.Len(t, birthdays, 1)
		assert.Equal(t, "Active Doe", birthdays[0].FullName)

		otherDay := 21
		birthdays, err = repo.Birthdays(ctx, time.February, &otherDay)
		require.NoError(t, err)
		assert.Empty(t, birthdays)
	})

	t.Run("other month", func(t *testing.T) {
		birthdays, err := repo.Birthdays(ctx, time.March, nil)
		require.NoError(t, err)
		require.Len(t, birthdays, 1)
		assert.Equal(t, "March Doe", birthdays[0].FullName)
	})
}
