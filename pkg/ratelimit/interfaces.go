package ratelimit

import (
	"time"
)

// RateLimiter answers whether a client may hit an endpoint right now.
type RateLimiter interface {
	Allow(clientID string, endpoint string) (bool, time.Duration, error)
	GetStats() RateLimiterStats
}

type RateLimit struct {
	RequestsPerMinute int           `json:"requestsPerMinute"`
	BurstSize         int           `json:"burstSize"`
	WindowSize        time.Duration `json:"windowSize"`
}

type RateLimiterStats struct {
	TotalRequests   int64 `json:"totalRequests"`
	BlockedRequests int64 `json:"blockedRequests"`
}

// TokenBucket holds the per-key state for the in-memory limiter.
type TokenBucket struct {
	Capacity   int       `json:"capacity"`
	Tokens     int       `json:"tokens"`
	RefillRate int       `json:"refillRate"`
	LastRefill time.Time `json:"lastRefill"`
}
