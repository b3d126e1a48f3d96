package llm

import (
	"context"
	"fmt"
	"log"
)

// Config holds provider selection and per-provider settings.
type Config struct {
	Provider string // "gemini", "anthropic", "openai", "bedrock"

	// Gemini-specific
	GeminiAPIKey string
	GeminiModel  string

	// Anthropic-specific
	AnthropicAPIKey string
	AnthropicModel  string

	// OpenAI-specific
	OpenAIAPIKey string
	OpenAIModel  string

	// AWS Bedrock-specific
	BedrockRegion string
	BedrockModel  string
}

// Factory creates LLM providers based on configuration
type Factory struct {
	config Config
}

// NewFactory creates a new provider factory
func NewFactory(config Config) *Factory {
	return &Factory{config: config}
}

// CreateProvider creates the configured LLM provider. Model defaults live
// in the provider constructors.
func (f *Factory) CreateProvider(ctx context.Context) (Provider, error) {
	switch f.config.Provider {
	case "gemini", "google", "":
		if f.config.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini API key not configured")
		}
		p := NewGeminiProvider(f.config.GeminiAPIKey, f.config.GeminiModel)
		log.Printf("Using Gemini provider with model %s", p.model)
		return p, nil

	case "anthropic", "claude":
		if f.config.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("anthropic API key not configured")
		}
		p := NewAnthropicProvider(f.config.AnthropicAPIKey, f.config.AnthropicModel)
		log.Printf("Using Anthropic provider with model %s", p.model)
		return p, nil

	case "openai":
		if f.config.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openAI API key not configured")
		}
		p := NewOpenAIProvider(f.config.OpenAIAPIKey, f.config.OpenAIModel)
		log.Printf("Using OpenAI provider with model %s", p.model)
		return p, nil

	case "bedrock", "aws":
		p, err := NewBedrockProvider(ctx, f.config.BedrockRegion, f.config.BedrockModel)
		if err != nil {
			return nil, err
		}
		log.Printf("Using AWS Bedrock provider with model %s", p.model)
		return p, nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: gemini, anthropic, openai, bedrock)", f.config.Provider)
	}
}
