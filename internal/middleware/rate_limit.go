package middleware

import (
	"log"
	"net/http"
	"time"

	"storefront/internal/redis"

	"github.com/gin-gonic/gin"
)

// RateLimit is a fixed-window limiter keyed by client IP, counted in Redis
// so all instances share the window. Redis failures let the request pass.
func RateLimit(client *redis.Client, window time.Duration, max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := client.IncrementRequestCount(c.ClientIP(), window)
		if err != nil {
			log.Printf("rate limit check failed for %s: %v", c.ClientIP(), err)
			c.Next()
			return
		}

		if count > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}

// CORS restricts browsers to the configured frontend origin.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Cart-ID")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
