package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"fleet-admin/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware enforces per-client request limits. A limiter failure
// never blocks the request.
func RateLimitMiddleware(limiter ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" && gin.Mode() == gin.DebugMode {
			c.Next()
			return
		}

		clientID := getClientID(c)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		endpoint := c.Request.Method + " " + path

		allowed, resetTime, err := limiter.Allow(clientID, endpoint)
		if err != nil {
			c.Header("X-RateLimit-Error", "Rate limiter unavailable")
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(resetTime.Seconds())+1))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "Rate limit exceeded",
				"message":    fmt.Sprintf("Too many requests. Try again in %v", resetTime),
				"retryAfter": int(resetTime.Seconds()) + 1,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// getClientID prefers the authenticated user id, falling back to an
// IP + User-Agent fingerprint for anonymous requests.
func getClientID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		if uid, ok := userID.(string); ok && uid != "" {
			return fmt.Sprintf("user:%s", uid)
		}
	}

	ip := getClientIP(c)
	userAgent := c.GetHeader("User-Agent")
	return fmt.Sprintf("anon:%s:%s", ip, hashString(userAgent))
}

func getClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}

	return c.ClientIP()
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
