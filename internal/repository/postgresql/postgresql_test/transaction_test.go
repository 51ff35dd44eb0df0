package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewUserRepository(setup.DB)

	t.Run("commit", func(t *testing.T) {
		var createdID string
		err := postgresql.WithTransaction(ctx, setup.DB, func(txCtx context.Context) error {
			created, err := repo.Create(txCtx, testUser("tx1"))
			if err != nil {
				return err
			}
			createdID = created.ID
			return nil
		})
		require.NoError(t, err)

		_, err = repo.GetByID(ctx, createdID)
		assert.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		var createdID string
		failure := errors.New("abort")
		err := postgresql.WithTransaction(ctx, setup.DB, func(txCtx context.Context) error {
			created, err := repo.Create(txCtx, testUser("tx2"))
			if err != nil {
				return err
			}
			createdID = created.ID
			return failure
		})
		assert.ErrorIs(t, err, failure)

		_, err = repo.GetByID(ctx, createdID)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}
