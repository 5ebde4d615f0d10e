package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/userhub/backend/pkg/logger"
	"github.com/userhub/backend/pkg/router"
)

// Logger assigns a request id when the client did not send one, and writes a
// single line per request once the handler chain finishes.
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(router.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(router.RequestIDHeader, requestID)
		}
		c.Writer.Header().Set(router.RequestIDHeader, requestID)

		begin := time.Now()
		c.Next()

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorf("%s | %s | %d | %s | %s",
				c.Request.Method, c.Request.URL.Path, status, time.Since(begin), requestID)
		case status >= 400:
			log.Warnf("%s | %s | %d | %s | %s",
				c.Request.Method, c.Request.URL.Path, status, time.Since(begin), requestID)
		default:
			log.Infof("%s | %s | %d | %s | %s",
				c.Request.Method, c.Request.URL.Path, status, time.Since(begin), requestID)
		}
	}
}
