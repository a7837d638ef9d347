package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"fleet-admin/internal/models"
	"fleet-admin/pkg/redis"

	redisClient "github.com/redis/go-redis/v9"
)

// StatsCache keeps the computed dashboard snapshot in Redis so repeated
// dashboard loads do not re-aggregate every collection.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	stats  *cacheStats
}

type cacheStats struct {
	mu     sync.RWMutex
	hits   int64
	misses int64
}

const statsKey = "dashboard:stats"

func NewStatsCache(client *redis.Client, prefix string, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &StatsCache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
		stats:  &cacheStats{},
	}
}

func (s *StatsCache) key() string {
	return s.prefix + statsKey
}

// Get returns the cached stats, or nil on a miss. A miss is not an error.
func (s *StatsCache) Get(ctx context.Context) (*models.DashboardStats, error) {
	data, err := s.client.GetClient().Get(ctx, s.key()).Result()
	if err != nil {
		if err == redisClient.Nil {
			s.recordMiss()
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dashboard stats from cache: %w", err)
	}

	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard stats: %w", err)
	}

	s.recordHit()
	return &stats, nil
}

func (s *StatsCache) Set(ctx context.Context, stats *models.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard stats: %w", err)
	}

	return s.client.GetClient().Set(ctx, s.key(), data, s.ttl).Err()
}

// Invalidate drops the cached snapshot. Called after writes that change
// any of the aggregated collections.
func (s *StatsCache) Invalidate(ctx context.Context) error {
	return s.client.GetClient().Del(ctx, s.key()).Err()
}

func (s *StatsCache) recordHit() {
	s.stats.mu.Lock()
	s.stats.hits++
	s.stats.mu.Unlock()
}

func (s *StatsCache) recordMiss() {
	s.stats.mu.Lock()
	s.stats.misses++
	s.stats.mu.Unlock()
}

// Stats reports hit/miss counters for the health endpoint.
func (s *StatsCache) Stats() map[string]int64 {
	s.stats.mu.RLock()
	defer s.stats.mu.RUnlock()
	return map[string]int64{
		"hits":   s.stats.hits,
		"misses": s.stats.misses,
	}
}
