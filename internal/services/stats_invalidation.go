package services

import (
	"context"
	"log"
	"time"

	"fleet-admin/pkg/cache"
)

// statsInvalidator is embedded by every service whose writes feed the
// dashboard aggregation. The zero value is a no-op until SetStatsCache wires
// the cache.
type statsInvalidator struct {
	statsCache *cache.StatsCache
}

// SetStatsCache wires the dashboard cache so writes can invalidate it.
func (s *statsInvalidator) SetStatsCache(statsCache *cache.StatsCache) {
	s.statsCache = statsCache
}

func (s *statsInvalidator) invalidateStats() {
	if s.statsCache == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := s.statsCache.Invalidate(ctx); err != nil {
		log.Printf("Failed to invalidate dashboard stats cache: %v", err)
	}
}
