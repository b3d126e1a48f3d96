package service

import (
	"context"

	"github.com/mealmuse/recipechat/backend/internal/store"
	"github.com/mealmuse/recipechat/backend/internal/types"
)

// LLMGateway produces model text for one prompt. The degraded flag marks
// the fallback reply served when the provider stayed unreachable; degraded
// replies are plain text and must not be parsed as recipe JSON.
type LLMGateway interface {
	Generate(ctx context.Context, prompt string) (reply string, degraded bool)
}

// IChatService defines the interface for chat operations
type IChatService interface {
	Chat(ctx context.Context, req *types.ChatRequest) *types.ChatResponse
}

// IFeedbackService defines the interface for feedback operations
type IFeedbackService interface {
	RecordFeedback(ctx context.Context, req *types.FeedbackRequest)
	Stats(ctx context.Context) store.Counters
}
