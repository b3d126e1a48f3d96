package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mealmuse/recipechat/backend/internal/api"
	"github.com/mealmuse/recipechat/backend/internal/middleware"
	"github.com/mealmuse/recipechat/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	chatService service.IChatService,
	feedbackService service.IFeedbackService,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.ErrorHandler())

	api.RegisterRoutes(router, chatService, feedbackService)

	return router
}
