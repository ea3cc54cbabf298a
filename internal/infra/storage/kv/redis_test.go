package kv

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func TestRedisStore_GetAbsentKey(t *testing.T) {
	store := newTestRedisStore(t)

	value, found, err := store.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestRedisStore_SetGetRoundTrip(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "waitlist-2026-09-02", []byte(`[{"name":"Max"}]`)))

	value, found, err := store.Get(ctx, "waitlist-2026-09-02")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"name":"Max"}]`), value)
}

func TestRedisStore_Overwrite(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cutlendly-seeded", []byte(`"1"`)))
	require.NoError(t, store.Set(ctx, "cutlendly-seeded", []byte(`"2"`)))

	value, found, err := store.Get(ctx, "cutlendly-seeded")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`"2"`), value)
}
