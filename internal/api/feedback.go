package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmuse/recipechat/backend/internal/service"
	"github.com/mealmuse/recipechat/backend/internal/types"
)

// FeedbackHandler handles feedback submissions and the stats read-out
type FeedbackHandler struct {
	feedbackService service.IFeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler instance
func NewFeedbackHandler(feedbackService service.IFeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// RegisterRoutes registers the feedback routes
func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	feedback := router.Group("/feedback")
	{
		feedback.POST("", h.CreateFeedback)
		feedback.GET("/stats", h.GetStats)
	}
}

// CreateFeedback records one feedback submission. Persistence trouble is
// handled inside the service, so the endpoint always acknowledges.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req types.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.feedbackService.RecordFeedback(c.Request.Context(), &req)
	c.JSON(http.StatusOK, types.FeedbackResponse{
		Status:  "success",
		Message: "Feedback received",
	})
}

// GetStats returns the accumulated preference counters
func (h *FeedbackHandler) GetStats(c *gin.Context) {
	counters := h.feedbackService.Stats(c.Request.Context())
	c.JSON(http.StatusOK, types.StatsResponse{Preferences: counters})
}
