package middleware

import (
	"net/http"
	"time"

	"go-gin-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger 結構化請求日誌
func Logger() gin.HandlerFunc {
	log := logger.WithComponent("http")

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status_code", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		switch {
		case c.Writer.Status() >= 500:
			if len(c.Errors) > 0 {
				fields = append(fields, zap.String("error", c.Errors.String()))
			}
			log.Error("request completed with error", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}

// Recovery renders the 500 page after a panic.
func Recovery() gin.HandlerFunc {
	log := logger.WithComponent("http")

	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
		)

		if !c.Writer.Written() {
			c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{"Title": "Server Error"})
		}
		c.Abort()
	})
}
