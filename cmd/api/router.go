package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quotebook-backend/internal/shared/middleware"
	"quotebook-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))
		c.SentenceHandler.RegisterRoutes(api)
	}

	return router
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health, ok := c.CheckHealth(ctx.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, health)
	}
}
