package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedis(rdb, time.Hour), mr
}

func TestRedisSetGetDestroy(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedis(t)

	require.NoError(t, store.Set(ctx, "sid", []byte(`{"userId":7}`), time.Minute))
	assert.True(t, mr.Exists("sess:sid"))

	blob, ok, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"userId":7}`, string(blob))

	require.NoError(t, store.Destroy(ctx, "sid"))
	_, ok, err = store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedis(t)

	require.NoError(t, store.Set(ctx, "sid", []byte("x"), 1000*time.Millisecond))
	mr.FastForward(2 * time.Second)

	_, ok, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisDefaultTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedis(t)

	require.NoError(t, store.Set(ctx, "sid", []byte("x"), 0))
	assert.Equal(t, time.Hour, mr.TTL("sess:sid"))
}

func TestRedisUnavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedis(t)
	mr.Close()

	_, _, err := store.Get(ctx, "sid")
	assert.Error(t, err)
}
