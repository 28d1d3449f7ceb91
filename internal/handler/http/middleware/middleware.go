package middleware

import (
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RateLimiter wraps a tollbooth limiter as gin middleware.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return tollbooth_gin.LimitHandler(lmt)
}

// RequestID attaches a correlation id to each request. An inbound
// X-Request-ID is honored so the id survives edge proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
