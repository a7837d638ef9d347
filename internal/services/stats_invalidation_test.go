package services

import (
	"context"
	"testing"
	"time"

	"fleet-admin/internal/config"
	"fleet-admin/internal/models"
	"fleet-admin/pkg/cache"
	"fleet-admin/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInvalidatorCache(t *testing.T) *cache.StatsCache {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(config.RedisConfig{
		Host: mr.Host(),
		Port: mr.Port(),
	})
	t.Cleanup(func() { client.Close() })

	return cache.NewStatsCache(client, "test:", time.Minute)
}

func TestInvalidateStatsDropsCachedSnapshot(t *testing.T) {
	statsCache := setupInvalidatorCache(t)
	ctx := context.Background()

	require.NoError(t, statsCache.Set(ctx, &models.DashboardStats{TotalVehicles: 4}))

	var inv statsInvalidator
	inv.SetStatsCache(statsCache)
	inv.invalidateStats()

	cached, err := statsCache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestInvalidateStatsWithoutCacheIsNoOp(t *testing.T) {
	var inv statsInvalidator
	inv.invalidateStats()
}

func TestRecordWritesShareVehicleInvalidation(t *testing.T) {
	// Every write-path service carries the same invalidator, so a fuel or
	// maintenance write drops the snapshot just like a vehicle write does.
	statsCache := setupInvalidatorCache(t)
	ctx := context.Background()

	services := []interface{ SetStatsCache(*cache.StatsCache) }{
		&VehicleService{},
		&DriverService{},
		&ServiceRecordService{},
		&InsuranceService{},
		&ExpenseService{},
	}

	for _, svc := range services {
		require.NoError(t, statsCache.Set(ctx, &models.DashboardStats{TotalVehicles: 1}))

		svc.SetStatsCache(statsCache)
		svc.(interface{ invalidateStats() }).invalidateStats()

		cached, err := statsCache.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, cached)
	}
}
