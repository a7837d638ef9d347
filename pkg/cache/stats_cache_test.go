package cache

import (
	"context"
	"testing"
	"time"

	"fleet-admin/internal/config"
	"fleet-admin/internal/models"
	"fleet-admin/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStatsCache(t *testing.T) (*StatsCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(config.RedisConfig{
		Host: mr.Host(),
		Port: mr.Port(),
	})
	t.Cleanup(func() { client.Close() })

	return NewStatsCache(client, "test:", time.Minute), mr
}

func TestStatsCacheMissReturnsNil(t *testing.T) {
	cache, _ := setupStatsCache(t)

	stats, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stats)

	counters := cache.Stats()
	assert.Equal(t, int64(0), counters["hits"])
	assert.Equal(t, int64(1), counters["misses"])
}

func TestStatsCacheSetAndGet(t *testing.T) {
	cache, _ := setupStatsCache(t)
	ctx := context.Background()

	stored := &models.DashboardStats{
		TotalVehicles:    3,
		TotalDrivers:     2,
		VehiclesByStatus: map[string]int{"active": 3},
		TotalCost:        1234.5,
	}
	require.NoError(t, cache.Set(ctx, stored))

	loaded, err := cache.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 3, loaded.TotalVehicles)
	assert.Equal(t, 2, loaded.TotalDrivers)
	assert.Equal(t, 3, loaded.VehiclesByStatus["active"])
	assert.Equal(t, 1234.5, loaded.TotalCost)

	counters := cache.Stats()
	assert.Equal(t, int64(1), counters["hits"])
}

func TestStatsCacheInvalidate(t *testing.T) {
	cache, _ := setupStatsCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &models.DashboardStats{TotalVehicles: 1}))
	require.NoError(t, cache.Invalidate(ctx))

	stats, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestStatsCacheEntryExpires(t *testing.T) {
	cache, mr := setupStatsCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &models.DashboardStats{TotalVehicles: 1}))
	mr.FastForward(2 * time.Minute)

	stats, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats)
}
