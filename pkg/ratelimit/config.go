package ratelimit

import (
	"strings"
	"time"
)

type Config struct {
	DefaultLimits   map[string]RateLimit `json:"defaultLimits"`
	RedisKeyPrefix  string               `json:"redisKeyPrefix"`
	CleanupInterval time.Duration        `json:"cleanupInterval"`
	Enabled         bool                 `json:"enabled"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultLimits: map[string]RateLimit{
			// Login is brute-forceable, keep it tight
			"auth_login": {RequestsPerMinute: 5, BurstSize: 2, WindowSize: time.Minute},
			"auth":       {RequestsPerMinute: 10, BurstSize: 5, WindowSize: time.Minute},

			// Record CRUD
			"records":       {RequestsPerMinute: 100, BurstSize: 20, WindowSize: time.Minute},
			"records_write": {RequestsPerMinute: 30, BurstSize: 10, WindowSize: time.Minute},

			// Notification feed is polled by the UI
			"alerts": {RequestsPerMinute: 200, BurstSize: 50, WindowSize: time.Minute},

			"dashboard": {RequestsPerMinute: 60, BurstSize: 15, WindowSize: time.Minute},

			"users": {RequestsPerMinute: 30, BurstSize: 10, WindowSize: time.Minute},

			"health": {RequestsPerMinute: 1000, BurstSize: 100, WindowSize: time.Minute},

			"default": {RequestsPerMinute: 60, BurstSize: 15, WindowSize: time.Minute},
		},
		RedisKeyPrefix:  "ratelimit:",
		CleanupInterval: 5 * time.Minute,
		Enabled:         true,
	}
}

// GetEndpointKey maps a request path and method to a rate limit category.
func (c *Config) GetEndpointKey(endpoint, method string) string {
	switch {
	case strings.HasPrefix(endpoint, "/api/v1/auth/login"):
		return "auth_login"
	case strings.HasPrefix(endpoint, "/api/v1/auth"):
		return "auth"
	case strings.HasPrefix(endpoint, "/api/v1/alerts"):
		return "alerts"
	case strings.HasPrefix(endpoint, "/api/v1/dashboard"):
		return "dashboard"
	case strings.HasPrefix(endpoint, "/api/v1/users"):
		return "users"
	case strings.HasPrefix(endpoint, "/health"):
		return "health"
	case isRecordPath(endpoint):
		if method == "GET" {
			return "records"
		}
		return "records_write"
	}
	return "default"
}

var recordPrefixes = []string{
	"/api/v1/vehicles",
	"/api/v1/drivers",
	"/api/v1/maintenance",
	"/api/v1/oil-changes",
	"/api/v1/tire-changes",
	"/api/v1/washings",
	"/api/v1/inspections",
	"/api/v1/insurance",
	"/api/v1/fuel",
	"/api/v1/expenses",
}

// splitEndpoint separates a "METHOD /path" endpoint string. Endpoints
// without a method prefix are treated as plain paths.
func splitEndpoint(endpoint string) (method, path string) {
	if m, p, ok := strings.Cut(endpoint, " "); ok {
		return m, p
	}
	return "", endpoint
}

func isRecordPath(endpoint string) bool {
	for _, prefix := range recordPrefixes {
		if strings.HasPrefix(endpoint, prefix) {
			return true
		}
	}
	return false
}
