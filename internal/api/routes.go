package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the web UI and API endpoints.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// Single-page UI
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	})

	// --- Portfolio Lifecycle ---
	portfolioGroup := router.Group("/portfolio")
	{
		portfolioGroup.POST("/generate", h.GeneratePortfolio)    // Generate a new portfolio from a brief
		portfolioGroup.GET("/:id/download", h.DownloadPortfolio) // Download the packaged site
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
