package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"grh-backend/internal/delivery/http/response"
	"grh-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	sweeperOnce    sync.Once
)

// sweepExpired drops entries whose window has passed, so the fallback map
// does not keep one entry per client IP forever.
func sweepExpired(now time.Time) {
	rateLimitStore.Range(func(key, val interface{}) bool {
		entry := val.(*rateLimitEntry)
		entry.mu.Lock()
		expired := now.After(entry.resetAt)
		entry.mu.Unlock()
		if expired {
			rateLimitStore.Delete(key)
		}
		return true
	})
}

func startSweeper() {
	sweeperOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(time.Minute)
			for t := range ticker.C {
				sweepExpired(t)
			}
		}()
	})
}

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// RateLimit limits requests per client IP within a sliding window. It uses
// Redis when available and falls back to an in-memory counter otherwise, so
// a Redis outage degrades to per-instance limiting instead of blocking logins.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:ip:"
	}
	startSweeper()

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		count, err := incrRedis(c.Request.Context(), key, cfg.Window)
		if err != nil {
			count = incrMemory(key, cfg.Window)
		}

		if count > cfg.Limit {
			c.Header("Retry-After", fmt.Sprintf("%d", int(cfg.Window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func incrRedis(ctx context.Context, key string, window time.Duration) (int, error) {
	client := redis.Client()
	if client == nil {
		return 0, fmt.Errorf("redis unavailable")
	}

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Int64()
	if err != nil {
		return 0, err
	}
	return int(result), nil
}

func incrMemory(key string, window time.Duration) int {
	now := time.Now()
	val, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
