package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmuse/recipechat/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "RecipeChat API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, chatService service.IChatService, feedbackService service.IFeedbackService) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	chatHandler := NewChatHandler(chatService)
	feedbackHandler := NewFeedbackHandler(feedbackService)

	api := router.Group("/api")
	chatHandler.RegisterRoutes(api)
	feedbackHandler.RegisterRoutes(api)
}
