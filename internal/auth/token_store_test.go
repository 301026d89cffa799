package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-employee/internal/auth"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Revoke stores the id with ttl", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := auth.NewRedisTokenStore(db)

		mock.ExpectSet("auth:revoked:tok-1", "1", 5*time.Minute).SetVal("OK")

		require.NoError(t, store.Revoke(ctx, "tok-1", 5*time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Non positive ttl is a no-op", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := auth.NewRedisTokenStore(db)

		require.NoError(t, store.Revoke(ctx, "tok-1", 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("IsRevoked", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := auth.NewRedisTokenStore(db)

		mock.ExpectExists("auth:revoked:tok-1").SetVal(1)
		mock.ExpectExists("auth:revoked:tok-2").SetVal(0)

		revoked, err := store.IsRevoked(ctx, "tok-1")
		require.NoError(t, err)
		assert.True(t, revoked)

		revoked, err = store.IsRevoked(ctx, "tok-2")
		require.NoError(t, err)
		assert.False(t, revoked)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := auth.NewRedisTokenStore(db)

		mock.ExpectExists("auth:revoked:tok-1").SetErr(errors.New("redis down"))

		_, err := store.IsRevoked(ctx, "tok-1")
		assert.Error(t, err)
	})
}
