package service

import (
	"context"
	"log"

	"github.com/mealmuse/recipechat/backend/internal/store"
	"github.com/mealmuse/recipechat/backend/internal/types"
)

// promptLogLimit caps how much of the composed prompt reaches the log.
const promptLogLimit = 300

// ChatService runs one chat turn end to end: load the preference summary,
// derive tuning directives, compose the prompt, call the model, and decide
// whether the reply is recipe JSON or plain text.
type ChatService struct {
	store       store.FeedbackStore
	gateway     LLMGateway
	tuner       *PromptTuner
	intent      *IntentDetector
	composer    *PromptComposer
	interpreter *ResponseInterpreter
}

func NewChatService(feedbackStore store.FeedbackStore, gateway LLMGateway) IChatService {
	return &ChatService{
		store:       feedbackStore,
		gateway:     gateway,
		tuner:       NewPromptTuner(),
		intent:      NewIntentDetector(),
		composer:    NewPromptComposer(),
		interpreter: NewResponseInterpreter(),
	}
}

// Chat never fails: an unreadable preference summary falls back to empty
// counters and an unreachable provider yields a degraded plain-text reply.
func (s *ChatService) Chat(ctx context.Context, req *types.ChatRequest) *types.ChatResponse {
	counters, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("Failed to load feedback summary: %v", err)
		counters = store.Counters{}
	}

	wantsRecipe := s.intent.IsRecipeRequest(req.Message)
	directives := s.tuner.Tune(counters)
	prompt := s.composer.Compose(directives, req.History, req.Message, wantsRecipe)
	log.Printf("Full Prompt (truncated): %s...", truncatePrompt(prompt))

	reply, degraded := s.gateway.Generate(ctx, prompt)
	if degraded {
		return &types.ChatResponse{Reply: reply, IsJSON: false}
	}

	payload, isJSON := s.interpreter.Interpret(reply, wantsRecipe)
	if wantsRecipe && !isJSON {
		log.Printf("Model returned invalid JSON for a recipe request, passing it through as text")
	}
	return &types.ChatResponse{Reply: payload, IsJSON: isJSON}
}

func truncatePrompt(prompt string) string {
	if len(prompt) <= promptLogLimit {
		return prompt
	}
	return prompt[:promptLogLimit]
}
