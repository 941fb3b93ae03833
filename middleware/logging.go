package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
	"github.com/rs/zerolog/log"
)

// RequestLoggingMiddleware writes one structured log line per request.
// The user agent is parsed into browser/OS fields for observability.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ua := useragent.Parse(c.Request.UserAgent())

		event := log.Info()
		if c.Writer.Status() >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("browser", ua.Name).
			Str("os", ua.OS).
			Str("request_id", c.GetString("request_id")).
			Msg("request handled")
	}
}
