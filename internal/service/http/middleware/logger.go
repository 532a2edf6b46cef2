package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		clientIP := c.ClientIP()

		c.Next()

		statusCode := c.Writer.Status()
		duration := time.Since(start)

		event := logs.Logger.Info().Str("method", method).
			Str("path", path).
			Str("client_ip", clientIP).
			Int("status", statusCode).
			Dur("duration", duration)
		// Generation handlers stash the batch id so a request line can be
		// matched to its batch's lifecycle logs.
		if batchID := c.GetString("batch_id"); batchID != "" {
			event = event.Str("batch_id", batchID)
		}
		event.Msg("request log")
	}
}
