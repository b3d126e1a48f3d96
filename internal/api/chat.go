package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmuse/recipechat/backend/internal/service"
	"github.com/mealmuse/recipechat/backend/internal/types"
)

// ChatHandler handles chat requests
type ChatHandler struct {
	chatService service.IChatService
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(chatService service.IChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// RegisterRoutes registers the chat routes
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat", h.Chat)
}

// Chat handles one chat turn
func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := h.chatService.Chat(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}
