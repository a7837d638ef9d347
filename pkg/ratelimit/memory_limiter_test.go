package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiterAllowsWithinBurst(t *testing.T) {
	limiter := NewMemoryRateLimiter(DefaultConfig())

	// auth_login allows a burst of 2
	for i := 0; i < 2; i++ {
		allowed, _, err := limiter.Allow("user:abc", "POST /api/v1/auth/login")
		assert.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, retryAfter, err := limiter.Allow("user:abc", "POST /api/v1/auth/login")
	assert.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
}

func TestMemoryLimiterIsolatesClients(t *testing.T) {
	limiter := NewMemoryRateLimiter(DefaultConfig())

	for i := 0; i < 2; i++ {
		allowed, _, _ := limiter.Allow("user:first", "POST /api/v1/auth/login")
		assert.True(t, allowed)
	}
	allowed, _, _ := limiter.Allow("user:first", "POST /api/v1/auth/login")
	assert.False(t, allowed)

	// A different client still has its own bucket.
	allowed, _, _ = limiter.Allow("user:second", "POST /api/v1/auth/login")
	assert.True(t, allowed)
}

func TestMemoryLimiterDisabled(t *testing.T) {
	config := DefaultConfig()
	config.Enabled = false
	limiter := NewMemoryRateLimiter(config)

	for i := 0; i < 100; i++ {
		allowed, _, err := limiter.Allow("user:abc", "POST /api/v1/auth/login")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}

	stats := limiter.GetStats()
	assert.Equal(t, int64(0), stats.TotalRequests)
}

func TestMemoryLimiterStats(t *testing.T) {
	limiter := NewMemoryRateLimiter(DefaultConfig())

	for i := 0; i < 4; i++ {
		limiter.Allow("user:abc", "POST /api/v1/auth/login")
	}

	stats := limiter.GetStats()
	assert.Equal(t, int64(4), stats.TotalRequests)
	assert.Equal(t, int64(2), stats.BlockedRequests)
}

func TestMemoryLimiterFallsBackToDefaultLimit(t *testing.T) {
	limiter := NewMemoryRateLimiter(DefaultConfig())

	// Unknown paths get the default bucket of 15.
	for i := 0; i < 15; i++ {
		allowed, _, _ := limiter.Allow("user:abc", "GET /metrics")
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
	allowed, _, _ := limiter.Allow("user:abc", "GET /metrics")
	assert.False(t, allowed)
}

func TestGetEndpointKey(t *testing.T) {
	config := DefaultConfig()

	tests := []struct {
		endpoint string
		method   string
		expected string
	}{
		{"/api/v1/auth/login", "POST", "auth_login"},
		{"/api/v1/auth/refresh", "POST", "auth"},
		{"/api/v1/alerts", "GET", "alerts"},
		{"/api/v1/alerts/unread-count", "GET", "alerts"},
		{"/api/v1/dashboard/stats", "GET", "dashboard"},
		{"/api/v1/users", "GET", "users"},
		{"/health", "GET", "health"},
		{"/api/v1/vehicles", "GET", "records"},
		{"/api/v1/vehicles", "POST", "records_write"},
		{"/api/v1/maintenance/:id", "PATCH", "records_write"},
		{"/api/v1/fuel", "GET", "records"},
		{"/metrics", "GET", "default"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.method, tt.endpoint), func(t *testing.T) {
			assert.Equal(t, tt.expected, config.GetEndpointKey(tt.endpoint, tt.method))
		})
	}
}

func TestSplitEndpoint(t *testing.T) {
	method, path := splitEndpoint("GET /api/v1/vehicles")
	assert.Equal(t, "GET", method)
	assert.Equal(t, "/api/v1/vehicles", path)

	method, path = splitEndpoint("/api/v1/vehicles")
	assert.Equal(t, "", method)
	assert.Equal(t, "/api/v1/vehicles", path)
}
