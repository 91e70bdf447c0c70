package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/movemint/launchpad-sync/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Collection endpoints (public read access)
		v1.GET("/collections", handler.ListCollections)
		v1.GET("/collections/:id", handler.GetCollection)

		// Launchpad action endpoints (require API key authentication)
		v1.POST("/collections/:id/reveal-data", middleware.APIKeyAuth(authCfg), handler.UploadRevealData)
		v1.POST("/collections/:id/after-mint", middleware.APIKeyAuth(authCfg), handler.AfterMint)
		v1.POST("/collections/:id/after-refund", middleware.APIKeyAuth(authCfg), handler.AfterRefund)
	}
}
