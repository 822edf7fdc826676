// File: internal/service/throttle.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/cache"

	"github.com/redis/go-redis/v9"
)

const loginFailPrefix = "login:fail:"

// LoginThrottle counts failed logins per email in the cache. A nil
// *LoginThrottle never blocks, so it can stand in when Redis is off.
type LoginThrottle struct {
	cache       cache.Cache
	maxAttempts int64
	window      time.Duration
}

func NewLoginThrottle(c cache.Cache, maxAttempts int, window time.Duration) *LoginThrottle {
	if c == nil {
		return nil
	}
	return &LoginThrottle{cache: c, maxAttempts: int64(maxAttempts), window: window}
}

func loginFailKey(email string) string {
	return loginFailPrefix + strings.ToLower(strings.TrimSpace(email))
}

// Blocked 回報該 email 在時間窗內是否已用完嘗試次數
func (t *LoginThrottle) Blocked(ctx context.Context, email string) (bool, error) {
	if t == nil {
		return false, nil
	}
	n, err := t.cache.Get(ctx, loginFailKey(email)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("LoginThrottle.Blocked: %w", err)
	}
	return n >= t.maxAttempts, nil
}

// Fail 記錄一次登入失敗，時間窗從第一次失敗開始計算
func (t *LoginThrottle) Fail(ctx context.Context, email string) error {
	if t == nil {
		return nil
	}
	key := loginFailKey(email)
	// 計數器建立時即帶 TTL，避免留下永不過期的鎖定
	created, err := t.cache.SetNX(ctx, key, 0, t.window).Result()
	if err != nil {
		return fmt.Errorf("LoginThrottle.Fail: %w", err)
	}
	n, err := t.cache.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("LoginThrottle.Fail: %w", err)
	}
	if !created && n == 1 {
		// key 在 SetNX 與 Incr 之間過期，Incr 重建的 key 沒有 TTL
		if err := t.cache.Expire(ctx, key, t.window).Err(); err != nil {
			return fmt.Errorf("LoginThrottle.Fail: %w", err)
		}
	}
	return nil
}

// Reset 登入成功後清除計數
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	if t == nil {
		return nil
	}
	if err := t.cache.Del(ctx, loginFailKey(email)).Err(); err != nil {
		return fmt.Errorf("LoginThrottle.Reset: %w", err)
	}
	return nil
}
