package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"google-auth/internal/metrics"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	collector *metrics.Collector,
	authH *AuthHandler,
	healthH *HealthHandler,
	allowedOrigin string,
) *gin.Engine {
	r := gin.New()

	r.Use(
		requestIDMiddleware(),
		zapLoggerMiddleware(logger, collector),
		gin.Recovery(),
		corsMiddleware(allowedOrigin),
	)

	r.GET("/hello", Hello)
	r.GET("/healthz", healthH.Check)
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	auth := r.Group("/auth")
	auth.POST("/google", authH.GoogleAuth)
	auth.POST("/verify", authH.VerifySession)

	return r
}

// requestIDMiddleware propaga o genera un identificador por request.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		if collector != nil {
			collector.RecordRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), latency)
		}
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

// corsMiddleware limita cross-origin al origen configurado del frontend.
// Responde 204 a los preflight OPTIONS.
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowedOrigin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Hello maneja GET /hello.
func Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello, World!")
}
