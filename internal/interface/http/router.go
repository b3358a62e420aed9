package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqisense/aqi-sense/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	// The error renderer must sit before the rate limiter so it still wraps
	// requests the limiter aborts.
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	api := router.Group("/api")
	{
		api.POST("/aqi-advice", handler.AQIAdvice)
		// Kept for older frontend builds.
		api.POST("/aqi", handler.AQIAdvice)
		api.POST("/search-location", handler.SearchLocation)
		api.GET("/aqi/health", handler.Health)
		api.GET("/trending-locations", handler.TrendingLocations)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
