package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) (*Locker, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLocker(client), mr
}

func TestLockerExclusive(t *testing.T) {
	l, _ := newTestLocker(t)
	ctx := context.Background()

	token, ok, err := l.TryLock(ctx, "scheduler:pass:2026-03-02", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	_, ok, err = l.TryLock(ctx, "scheduler:pass:2026-03-02", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = l.TryLock(ctx, "scheduler:pass:2026-03-03", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, l.Unlock(ctx, "scheduler:pass:2026-03-02", token))
	_, ok, err = l.TryLock(ctx, "scheduler:pass:2026-03-02", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockerUnlockForeignToken(t *testing.T) {
	l, mr := newTestLocker(t)
	ctx := context.Background()

	_, ok, err := l.TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	assert.ErrorIs(t, l.Unlock(ctx, "k", "someone-else"), ErrLockNotHeld)
	assert.True(t, mr.Exists("k"))
}

func TestLockerExpires(t *testing.T) {
	l, mr := newTestLocker(t)
	ctx := context.Background()

	token, ok, err := l.TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	_, ok, err = l.TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.ErrorIs(t, l.Unlock(ctx, "k", token), ErrLockNotHeld)
}

func TestLockerBackendDown(t *testing.T) {
	l, mr := newTestLocker(t)
	mr.Close()

	_, ok, err := l.TryLock(context.Background(), "k", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNopLocker(t *testing.T) {
	var l NopLocker
	_, ok, err := l.TryLock(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, l.Unlock(context.Background(), "k", ""))
}
