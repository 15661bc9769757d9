package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"parkease/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles per authenticated user, or per client IP before
// authentication. Limiter errors fail open.
func RateLimit(limiter ratelimit.Limiter, capacity int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if id, ok := GetUserID(c); ok {
			key = "user:" + id.String()
		}
		key += ":" + c.FullPath()

		d, err := limiter.Take(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err.Error(), "key", key)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(capacity))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

		if !d.Allowed {
			secs := int(math.Ceil(d.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			abortJSON(c, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		c.Next()
	}
}
