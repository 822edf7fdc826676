package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the subset of *redis.Client the service uses: counters with
// expiry for the login throttle and Ping for health checks.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	GetFn    func(ctx context.Context, key string) *redis.StringCmd
	SetNXFn  func(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	IncrFn   func(ctx context.Context, key string) *redis.IntCmd
	ExpireFn func(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	DelFn    func(ctx context.Context, keys ...string) *redis.IntCmd
	PingFn   func(ctx context.Context) *redis.StatusCmd
	CloseFn  func() error
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

func (f *FakeCache) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.SetNXFn != nil {
		return f.SetNXFn(ctx, key, value, expiration)
	}
	panic("unexpected SetNX")
}

func (f *FakeCache) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.IncrFn != nil {
		return f.IncrFn(ctx, key)
	}
	panic("unexpected Incr")
}

func (f *FakeCache) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if f.ExpireFn != nil {
		return f.ExpireFn(ctx, key, expiration)
	}
	panic("unexpected Expire")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

// Close is a no-op unless CloseFn is set.
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// MemoryCache 以 map 實作的 FakeCache，足以支援計數操作；TTL 只記錄不生效
type MemoryCache struct {
	FakeCache
	Values  map[string]int64
	Expires map[string]time.Duration
}

func NewMemoryCache() *MemoryCache {
	m := &MemoryCache{Values: map[string]int64{}, Expires: map[string]time.Duration{}}
	m.GetFn = func(_ context.Context, key string) *redis.StringCmd {
		v, ok := m.Values[key]
		if !ok {
			return redis.NewStringResult("", redis.Nil)
		}
		return redis.NewStringResult(strconv.FormatInt(v, 10), nil)
	}
	m.SetNXFn = func(_ context.Context, key string, value interface{}, exp time.Duration) *redis.BoolCmd {
		if _, ok := m.Values[key]; ok {
			return redis.NewBoolResult(false, nil)
		}
		n, _ := value.(int)
		m.Values[key] = int64(n)
		m.Expires[key] = exp
		return redis.NewBoolResult(true, nil)
	}
	m.IncrFn = func(_ context.Context, key string) *redis.IntCmd {
		m.Values[key]++
		return redis.NewIntResult(m.Values[key], nil)
	}
	m.ExpireFn = func(_ context.Context, key string, exp time.Duration) *redis.BoolCmd {
		_, ok := m.Values[key]
		if ok {
			m.Expires[key] = exp
		}
		return redis.NewBoolResult(ok, nil)
	}
	m.DelFn = func(_ context.Context, keys ...string) *redis.IntCmd {
		var n int64
		for _, k := range keys {
			if _, ok := m.Values[k]; ok {
				delete(m.Values, k)
				delete(m.Expires, k)
				n++
			}
		}
		return redis.NewIntResult(n, nil)
	}
	m.PingFn = func(context.Context) *redis.StatusCmd {
		return redis.NewStatusResult("PONG", nil)
	}
	return m
}
