package middleware

import (
	"hmi-backend/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler forwards errors attached via c.Error to Sentry. Handlers
// attach the raw store error there while responding with a sanitized
// message, so the detail reaches operators without reaching clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			for _, ginErr := range c.Errors {
				utils.CaptureError(ginErr.Err, map[string]interface{}{
					"endpoint": c.Request.URL.Path,
					"method":   c.Request.Method,
					"status":   c.Writer.Status(),
				})
			}
		}
	}
}
