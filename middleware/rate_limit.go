package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateLimitMiddleware caps requests per client IP inside a fixed window
// using a redis counter. The counter key carries the window bucket so
// stale buckets expire on their own. Redis failures fail open: limiting is
// protective middleware, not core logic, and must not take the API down.
func RateLimitMiddleware(client *redis.Client, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		bucket := time.Now().UnixNano() / int64(window)
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), bucket)

		ctx := c.Request.Context()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > limit {
			c.String(http.StatusTooManyRequests,
				"Too many requests from this IP, please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
