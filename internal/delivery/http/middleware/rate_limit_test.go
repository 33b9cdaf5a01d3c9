package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRateLimit(t *testing.T) {
	t.Run("Should count requests within the window", func(t *testing.T) {
		key := "rl:test:count"
		defer rateLimitStore.Delete(key)

		assert.Equal(t, 1, incrMemory(key, time.Minute))
		assert.Equal(t, 2, incrMemory(key, time.Minute))
		assert.Equal(t, 3, incrMemory(key, time.Minute))
	})

	t.Run("Should restart the count after the window passes", func(t *testing.T) {
		key := "rl:test:reset"
		defer rateLimitStore.Delete(key)

		// Negative window puts resetAt in the past immediately
		incrMemory(key, -time.Second)
		assert.Equal(t, 1, incrMemory(key, time.Minute))
	})

	t.Run("Should evict expired entries on sweep", func(t *testing.T) {
		expired := "rl:test:expired"
		live := "rl:test:live"
		defer rateLimitStore.Delete(live)

		incrMemory(expired, -time.Second)
		incrMemory(live, time.Minute)

		sweepExpired(time.Now())

		_, stillThere := rateLimitStore.Load(expired)
		assert.False(t, stillThere)
		_, stillThere = rateLimitStore.Load(live)
		assert.True(t, stillThere)
	})
}
