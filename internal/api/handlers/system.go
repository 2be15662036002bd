package handlers

import (
	"net/http"
	"time"

	"gravity-server/internal/api/interfaces"
	"gravity-server/internal/api/models"

	"github.com/gin-gonic/gin"
)

const serverVersion = "1.0.0"

// Landing answers the root path so load balancers and humans can see the
// server is up.
func Landing() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Gravity server is running",
			"status":  "active",
		})
	}
}

// HealthCheck reports liveness including the database connection
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if !services.IsHealthy() {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, models.HealthCheckResponse{
			Status:    status,
			Timestamp: time.Now().Unix(),
			Version:   serverVersion,
		})
	}
}
