package httpserver

import (
	"support-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Support API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "support-srv"
)

// healthCheck handles health check requests
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests (Redis + Qdrant + Kafka).
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.redisClient.Ping(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "Redis connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := srv.qdrantClient.Ping(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "Qdrant connection failed",
			"error":   err.Error(),
		})
		return
	}
	kafkaStatus := "disabled"
	if srv.producer != nil {
		if err := srv.producer.HealthCheck(); err != nil {
			c.JSON(503, gin.H{
				"status":  "not ready",
				"message": "Kafka connection failed",
				"error":   err.Error(),
			})
			return
		}
		kafkaStatus = "connected"
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"redis":   "connected",
		"qdrant":  "connected",
		"kafka":   kafkaStatus,
	})
}

// liveCheck handles liveness check requests
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
