package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet-admin/pkg/ratelimit"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitedRouter(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	config := ratelimit.DefaultConfig()
	config.RedisKeyPrefix = "test_ratelimit:"
	config.DefaultLimits["auth_login"] = ratelimit.RateLimit{
		RequestsPerMinute: 1,
		BurstSize:         1,
		WindowSize:        time.Minute,
	}

	limiter := ratelimit.NewRedisRateLimiter(client, config)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(limiter))

	router.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/api/v1/vehicles", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"vehicles": []string{}})
	})

	return router, mr
}

func TestRateLimitMiddlewareAllows(t *testing.T) {
	router, _ := setupRateLimitedRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/vehicles", nil)
	req.Header.Set("X-Forwarded-For", "192.168.1.1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddlewareBlocks(t *testing.T) {
	router, _ := setupRateLimitedRouter(t)

	clientIP := "192.168.1.2"

	req1 := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
	req1.Header.Set("X-Forwarded-For", clientIP)
	req1.Header.Set("User-Agent", "TestAgent/1.0")
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, req1)

	assert.Equal(t, http.StatusOK, w1.Code)

	req2 := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
	req2.Header.Set("X-Forwarded-For", clientIP)
	req2.Header.Set("User-Agent", "TestAgent/1.0")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)

	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	assert.NotEmpty(t, w2.Header().Get("Retry-After"))
	assert.Contains(t, w2.Body.String(), "Rate limit exceeded")
}

func TestRateLimitMiddlewareIsolatesClients(t *testing.T) {
	router, _ := setupRateLimitedRouter(t)

	req1 := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
	req1.Header.Set("X-Forwarded-For", "192.168.1.3")
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, req1)

	assert.Equal(t, http.StatusOK, w1.Code)

	req2 := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
	req2.Header.Set("X-Forwarded-For", "192.168.1.4")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)

	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	router, mr := setupRateLimitedRouter(t)
	mr.Close()

	// A limiter failure never blocks the request.
	req := httptest.NewRequest("GET", "/api/v1/vehicles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Error"))
}

func TestGetClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupContext   func(*gin.Context)
		expectedPrefix string
	}{
		{
			name: "authenticated user",
			setupContext: func(c *gin.Context) {
				c.Set("user_id", "user123")
			},
			expectedPrefix: "user:user123",
		},
		{
			name: "anonymous user",
			setupContext: func(c *gin.Context) {
				c.Request.Header.Set("X-Forwarded-For", "192.168.1.1")
				c.Request.Header.Set("User-Agent", "TestAgent/1.0")
			},
			expectedPrefix: "anon:192.168.1.1:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/test", nil)

			tt.setupContext(c)

			clientID := getClientID(c)
			assert.Contains(t, clientID, tt.expectedPrefix)
		})
	}
}

func TestGetClientIPPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)
	c.Request.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	c.Request.Header.Set("X-Real-IP", "10.0.0.3")

	// The first forwarded address wins over X-Real-IP.
	assert.Equal(t, "10.0.0.1", getClientIP(c))

	c.Request.Header.Del("X-Forwarded-For")
	assert.Equal(t, "10.0.0.3", getClientIP(c))
}
