package auth

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newTestRedis(t *testing.T) *goredis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := goredis.ParseURL(connStr)
	require.NoError(t, err)

	rdb := goredis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRefreshStoreRoundtrip(t *testing.T) {
	rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", "jti-1", "token-secret"))

	t.Run("stores only the hash", func(t *testing.T) {
		raw, err := rdb.Get(ctx, "refresh:user-1:jti-1").Result()
		require.NoError(t, err)
		assert.NotEqual(t, "token-secret", raw)
		assert.Len(t, raw, 64) // hex SHA-256
	})

	t.Run("redeems exactly once", func(t *testing.T) {
		require.NoError(t, store.Redeem(ctx, "user-1", "jti-1", "token-secret"))
		// Second redemption of the same jti is a reuse.
		err := store.Redeem(ctx, "user-1", "jti-1", "token-secret")
		assert.ErrorIs(t, err, ErrTokenReused)
	})
}

func TestRefreshStoreRejectsTamperedToken(t *testing.T) {
	rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", "jti-1", "token-secret"))

	err := store.Redeem(ctx, "user-1", "jti-1", "forged-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshStoreReuseRevokesAllSessions(t *testing.T) {
	rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, time.Hour)
	ctx := context.Background()

	// Two live sessions for the same user, one for another user.
	require.NoError(t, store.Save(ctx, "user-1", "jti-a", "tok-a"))
	require.NoError(t, store.Save(ctx, "user-1", "jti-b", "tok-b"))
	require.NoError(t, store.Save(ctx, "user-2", "jti-c", "tok-c"))

	// Redeem jti-a, then present it again: reuse. Every user-1 session
	// must be gone, user-2 untouched.
	require.NoError(t, store.Redeem(ctx, "user-1", "jti-a", "tok-a"))
	err := store.Redeem(ctx, "user-1", "jti-a", "tok-a")
	require.ErrorIs(t, err, ErrTokenReused)

	err = store.Redeem(ctx, "user-1", "jti-b", "tok-b")
	assert.ErrorIs(t, err, ErrTokenReused)

	require.NoError(t, store.Redeem(ctx, "user-2", "jti-c", "tok-c"))
}

func TestServiceLogoutAll(t *testing.T) {
	rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, time.Hour)
	manager, err := NewManager("logout-all-secret", time.Minute, time.Hour)
	require.NoError(t, err)
	// LogoutAll never touches the database, only the token store.
	service := NewService(nil, manager, store, 5, time.Minute)
	ctx := context.Background()

	// Two live sessions for user-1, one for user-2.
	tokA, jtiA, err := manager.NewRefreshToken("user-1", "alice")
	require.NoError(t, err)
	tokB, jtiB, err := manager.NewRefreshToken("user-1", "alice")
	require.NoError(t, err)
	tokC, jtiC, err := manager.NewRefreshToken("user-2", "bob")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "user-1", jtiA, tokA))
	require.NoError(t, store.Save(ctx, "user-1", jtiB, tokB))
	require.NoError(t, store.Save(ctx, "user-2", jtiC, tokC))

	require.NoError(t, service.LogoutAll(ctx, tokA))

	// Every user-1 session is gone, user-2 is untouched.
	assert.ErrorIs(t, store.Redeem(ctx, "user-1", jtiA, tokA), ErrTokenReused)
	assert.ErrorIs(t, store.Redeem(ctx, "user-1", jtiB, tokB), ErrTokenReused)
	require.NoError(t, store.Redeem(ctx, "user-2", jtiC, tokC))

	t.Run("rejects garbage tokens", func(t *testing.T) {
		assert.ErrorIs(t, service.LogoutAll(ctx, "not-a-token"), ErrInvalidCredentials)
	})

	t.Run("rejects access tokens", func(t *testing.T) {
		access, err := manager.NewAccessToken("user-2", "bob")
		require.NoError(t, err)
		assert.ErrorIs(t, service.LogoutAll(ctx, access), ErrInvalidCredentials)
	})
}

func TestRefreshStoreRevoke(t *testing.T) {
	rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", "jti-1", "tok"))
	require.NoError(t, store.Revoke(ctx, "user-1", "jti-1"))

	err := store.Redeem(ctx, "user-1", "jti-1", "tok")
	assert.ErrorIs(t, err, ErrTokenReused)
}
