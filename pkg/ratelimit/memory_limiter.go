package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryRateLimiter is the single-instance token bucket limiter. Used when
// Redis is unavailable or for tests.
type MemoryRateLimiter struct {
	config *Config
	stats  *RateLimiterStats
	tokens map[string]*TokenBucket
	mu     sync.Mutex
}

func NewMemoryRateLimiter(config *Config) *MemoryRateLimiter {
	if config == nil {
		config = DefaultConfig()
	}

	limiter := &MemoryRateLimiter{
		config: config,
		stats:  &RateLimiterStats{},
		tokens: make(map[string]*TokenBucket),
	}

	go limiter.cleanupExpiredTokens()

	return limiter
}

func (r *MemoryRateLimiter) Allow(clientID string, endpoint string) (bool, time.Duration, error) {
	if !r.config.Enabled {
		return true, 0, nil
	}

	atomic.AddInt64(&r.stats.TotalRequests, 1)

	limit := r.limitFor(endpoint)
	key := fmt.Sprintf("%s:%s", clientID, endpoint)

	r.mu.Lock()
	defer r.mu.Unlock()

	bucket := r.getOrCreateTokenBucket(key, limit)

	now := time.Now()

	if !bucket.LastRefill.IsZero() {
		elapsed := now.Sub(bucket.LastRefill)
		tokensToAdd := int(float64(limit.RequestsPerMinute) * elapsed.Minutes())
		if tokensToAdd > 0 {
			bucket.Tokens = min(bucket.Capacity, bucket.Tokens+tokensToAdd)
			bucket.LastRefill = now
		}
	}

	if bucket.Tokens > 0 {
		bucket.Tokens--
		return true, 0, nil
	}

	atomic.AddInt64(&r.stats.BlockedRequests, 1)
	retryAfter := time.Minute / time.Duration(limit.RequestsPerMinute)
	return false, retryAfter, nil
}

func (r *MemoryRateLimiter) limitFor(endpoint string) RateLimit {
	method, path := splitEndpoint(endpoint)
	endpointKey := r.config.GetEndpointKey(path, method)

	if limit, exists := r.config.DefaultLimits[endpointKey]; exists {
		return limit
	}

	if defaultLimit, exists := r.config.DefaultLimits["default"]; exists {
		return defaultLimit
	}

	return RateLimit{RequestsPerMinute: 60, BurstSize: 15, WindowSize: time.Minute}
}

func (r *MemoryRateLimiter) getOrCreateTokenBucket(key string, limit RateLimit) *TokenBucket {
	if bucket, exists := r.tokens[key]; exists {
		return bucket
	}

	bucket := &TokenBucket{
		Capacity:   limit.BurstSize,
		Tokens:     limit.BurstSize,
		RefillRate: limit.RequestsPerMinute,
		LastRefill: time.Now(),
	}

	r.tokens[key] = bucket
	return bucket
}

func (r *MemoryRateLimiter) GetStats() RateLimiterStats {
	return RateLimiterStats{
		TotalRequests:   atomic.LoadInt64(&r.stats.TotalRequests),
		BlockedRequests: atomic.LoadInt64(&r.stats.BlockedRequests),
	}
}

func (r *MemoryRateLimiter) cleanupExpiredTokens() {
	ticker := time.NewTicker(r.config.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for key, bucket := range r.tokens {
			if now.Sub(bucket.LastRefill) > time.Hour {
				delete(r.tokens, key)
			}
		}
		r.mu.Unlock()
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
