package handlers

import (
	"context"
	"net/http"
	"time"

	"fleet-admin/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	db          *mongo.Database
	redisClient *redis.Client
}

type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Services  map[string]interface{} `json:"services"`
}

func NewHealthHandler(db *mongo.Database, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Timestamp: time.Now(),
		Services:  make(map[string]interface{}),
	}

	overallHealthy := true

	mongoStatus := h.checkMongoDB()
	response.Services["mongodb"] = mongoStatus
	if !mongoStatus["healthy"].(bool) {
		overallHealthy = false
	}

	redisStatus := h.checkRedis()
	response.Services["redis"] = redisStatus
	if !redisStatus["healthy"].(bool) {
		overallHealthy = false
	}

	if overallHealthy {
		response.Status = "healthy"
		c.JSON(http.StatusOK, response)
	} else {
		response.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
	}
}

func (h *HealthHandler) checkMongoDB() map[string]interface{} {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Client().Ping(ctx, nil)
	elapsed := time.Since(start)

	status := map[string]interface{}{
		"healthy":      err == nil,
		"responseTime": elapsed.String(),
	}
	if err != nil {
		status["error"] = err.Error()
	}
	return status
}

func (h *HealthHandler) checkRedis() map[string]interface{} {
	health := h.redisClient.HealthCheck()

	status := map[string]interface{}{
		"healthy":      health.IsConnected,
		"responseTime": health.ResponseTime.String(),
		"pool":         h.redisClient.GetConnectionStats(),
	}
	if health.Error != "" {
		status["error"] = health.Error
	}
	return status
}
