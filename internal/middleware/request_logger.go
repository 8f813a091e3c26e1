package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger writes one line per finished request. Handlers that map
// an error to a status put its text under the "error" context key, so it
// lands here instead of being logged twice.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		if errText := c.GetString("error"); errText != "" {
			log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request failed",
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", c.Writer.Status()),
				logger.Duration("duration", time.Since(start)),
				logger.String("request_id", c.GetString("request_id")),
				logger.String("error", errText),
			)
			return
		}

		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request completed",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("request_id", c.GetString("request_id")),
		)
	}
}
