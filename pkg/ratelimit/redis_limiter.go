package ratelimit

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter enforces limits across instances using a fixed window
// counter evaluated atomically in a Lua script.
type RedisRateLimiter struct {
	client *redis.Client
	config *Config
	stats  *RateLimiterStats
	ctx    context.Context
}

func NewRedisRateLimiter(client *redis.Client, config *Config) *RedisRateLimiter {
	if config == nil {
		config = DefaultConfig()
	}

	return &RedisRateLimiter{
		client: client,
		config: config,
		stats:  &RateLimiterStats{},
		ctx:    context.Background(),
	}
}

var windowScript = redis.NewScript(`
	local key = KEYS[1]
	local burst_size = tonumber(ARGV[1])
	local window_ms = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])

	local count = tonumber(redis.call('HGET', key, 'count')) or 0
	local window_start = tonumber(redis.call('HGET', key, 'window_start')) or now

	if now - window_start >= window_ms then
		count = 0
		window_start = now
	end

	local allowed = count < burst_size
	if allowed then
		count = count + 1
	end

	local reset_ms = 0
	if not allowed then
		reset_ms = (window_start + window_ms) - now
	end

	redis.call('HSET', key, 'count', count, 'window_start', window_start)
	redis.call('PEXPIRE', key, window_ms + 1000)

	return {allowed and 1 or 0, reset_ms}
`)

func (r *RedisRateLimiter) Allow(clientID string, endpoint string) (bool, time.Duration, error) {
	if !r.config.Enabled {
		return true, 0, nil
	}

	atomic.AddInt64(&r.stats.TotalRequests, 1)

	limit := r.limitFor(endpoint)
	key := fmt.Sprintf("%s%s:%s", r.config.RedisKeyPrefix, clientID, endpoint)

	result, err := windowScript.Run(r.ctx, r.client, []string{key},
		limit.BurstSize,
		limit.WindowSize.Milliseconds(),
		time.Now().UnixMilli()).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit check failed: %w", err)
	}

	resultSlice, ok := result.([]interface{})
	if !ok || len(resultSlice) != 2 {
		return false, 0, fmt.Errorf("unexpected script result format")
	}

	allowed := resultSlice[0].(int64) == 1
	resetTime := time.Duration(resultSlice[1].(int64)) * time.Millisecond

	if !allowed {
		atomic.AddInt64(&r.stats.BlockedRequests, 1)
		return false, resetTime, nil
	}

	return true, 0, nil
}

func (r *RedisRateLimiter) limitFor(endpoint string) RateLimit {
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

func (r *RedisRateLimiter) GetStats() RateLimiterStats {
	return RateLimiterStats{
		TotalRequests:   atomic.LoadInt64(&r.stats.TotalRequests),
		BlockedRequests: atomic.LoadInt64(&r.stats.BlockedRequests),
	}
}
