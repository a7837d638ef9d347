package ratelimit

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisLimiter(t *testing.T, config *Config) (*RedisRateLimiter, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisRateLimiter(client, config), mr
}

func TestRedisLimiterAllowsWithinBurst(t *testing.T) {
	limiter, _ := setupRedisLimiter(t, DefaultConfig())

	for i := 0; i < 2; i++ {
		allowed, _, err := limiter.Allow("user:abc", "POST /api/v1/auth/login")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, resetTime, err := limiter.Allow("user:abc", "POST /api/v1/auth/login")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, resetTime, time.Duration(0))
	assert.LessOrEqual(t, resetTime, time.Minute)
}

func TestRedisLimiterIsolatesEndpoints(t *testing.T) {
	limiter, _ := setupRedisLimiter(t, DefaultConfig())

	for i := 0; i < 2; i++ {
		allowed, _, err := limiter.Allow("user:abc", "POST /api/v1/auth/login")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, _, err := limiter.Allow("user:abc", "POST /api/v1/auth/login")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Exhausting the login bucket does not touch the alerts bucket.
	allowed, _, err = limiter.Allow("user:abc", "GET /api/v1/alerts")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiterDisabled(t *testing.T) {
	config := DefaultConfig()
	config.Enabled = false
	limiter, _ := setupRedisLimiter(t, config)

	for i := 0; i < 10; i++ {
		allowed, _, err := limiter.Allow("user:abc", "POST /api/v1/auth/login")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisLimiterErrorOnClosedConnection(t *testing.T) {
	limiter, mr := setupRedisLimiter(t, DefaultConfig())
	mr.Close()

	_, _, err := limiter.Allow("user:abc", "POST /api/v1/auth/login")
	assert.Error(t, err)
}

func TestRedisLimiterStats(t *testing.T) {
	limiter, _ := setupRedisLimiter(t, DefaultConfig())

	for i := 0; i < 4; i++ {
		limiter.Allow("user:abc", "POST /api/v1/auth/login")
	}

	stats := limiter.GetStats()
	assert.Equal(t, int64(4), stats.TotalRequests)
	assert.Equal(t, int64(2), stats.BlockedRequests)
}
