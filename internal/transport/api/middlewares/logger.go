package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "api",
		"module":    "http",
	})
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"clientIP": c.ClientIP(),
		}
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			fields["userID"] = userID
		}
		e := entry.WithFields(fields)
		if len(c.Errors) > 0 {
			e = e.WithError(c.Errors[0].Err)
		}
		switch status := c.Writer.Status(); {
		case status >= 500: //nolint:mnd
			e.Error("request failed")
		case status >= 400: //nolint:mnd
			e.Info("request rejected")
		default:
			e.Debug("request done")
		}
	}
}
