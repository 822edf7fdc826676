package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(ctx, "k") })
	require.Panics(t, func() { c.SetNX(ctx, "k", 0, time.Second) })
	require.Panics(t, func() { c.Incr(ctx, "k") })
	require.Panics(t, func() { c.Expire(ctx, "k", time.Second) })
	require.Panics(t, func() { c.Del(ctx, "k") })
	require.Panics(t, func() { c.Ping(ctx) })
	require.NoError(t, c.Close())

	var calls []string
	c.GetFn = func(context.Context, string) *redis.StringCmd {
		calls = append(calls, "get")
		return redis.NewStringResult("v", nil)
	}
	c.SetNXFn = func(context.Context, string, interface{}, time.Duration) *redis.BoolCmd {
		calls = append(calls, "setnx")
		return redis.NewBoolResult(true, nil)
	}
	c.IncrFn = func(context.Context, string) *redis.IntCmd {
		calls = append(calls, "incr")
		return redis.NewIntResult(1, nil)
	}
	c.ExpireFn = func(context.Context, string, time.Duration) *redis.BoolCmd {
		calls = append(calls, "expire")
		return redis.NewBoolResult(true, nil)
	}
	c.DelFn = func(_ context.Context, keys ...string) *redis.IntCmd {
		calls = append(calls, "del")
		return redis.NewIntResult(int64(len(keys)), nil)
	}
	c.PingFn = func(context.Context) *redis.StatusCmd {
		calls = append(calls, "ping")
		return redis.NewStatusResult("PONG", nil)
	}
	c.CloseFn = func() error { calls = append(calls, "close"); return errors.New("close") }

	require.Equal(t, "v", c.Get(ctx, "k").Val())
	require.True(t, c.SetNX(ctx, "k", 0, time.Second).Val())
	require.Equal(t, int64(1), c.Incr(ctx, "k").Val())
	require.True(t, c.Expire(ctx, "k", time.Second).Val())
	require.Equal(t, int64(2), c.Del(ctx, "a", "b").Val())
	require.Equal(t, "PONG", c.Ping(ctx).Val())
	require.EqualError(t, c.Close(), "close")
	require.Equal(t, []string{"get", "setnx", "incr", "expire", "del", "ping", "close"}, calls)
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryCache()

	_, err := m.Get(ctx, "n").Result()
	require.ErrorIs(t, err, redis.Nil)
	require.False(t, m.Expire(ctx, "n", time.Minute).Val())

	require.Equal(t, int64(1), m.Incr(ctx, "n").Val())
	require.Equal(t, int64(2), m.Incr(ctx, "n").Val())
	n, err := m.Get(ctx, "n").Int64()
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	require.True(t, m.Expire(ctx, "n", time.Minute).Val())
	require.Equal(t, time.Minute, m.Expires["n"])

	require.Equal(t, int64(1), m.Del(ctx, "n", "missing").Val())
	require.NotContains(t, m.Values, "n")
	require.NotContains(t, m.Expires, "n")
	require.NoError(t, m.Ping(ctx).Err())
}

func TestMemoryCacheSetNX(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryCache()

	require.True(t, m.SetNX(ctx, "n", 0, time.Minute).Val())
	require.Equal(t, int64(0), m.Values["n"])
	require.Equal(t, time.Minute, m.Expires["n"])

	require.Equal(t, int64(1), m.Incr(ctx, "n").Val())
	require.False(t, m.SetNX(ctx, "n", 0, time.Hour).Val())
	require.Equal(t, int64(1), m.Values["n"])
	require.Equal(t, time.Minute, m.Expires["n"], "an existing key keeps its TTL")
}
