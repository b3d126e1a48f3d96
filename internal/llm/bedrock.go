package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// BedrockProvider calls Anthropic models hosted on AWS Bedrock.
type BedrockProvider struct {
	client *bedrockruntime.Client
	model  string
}

// NewBedrockProvider creates a new AWS Bedrock provider. Credentials come
// from the environment or the instance role.
func NewBedrockProvider(ctx context.Context, region, model string) (*BedrockProvider, error) {
	if region == "" {
		region = "us-east-1"
	}
	if model == "" {
		model = "anthropic.claude-3-5-sonnet-20240620-v1:0"
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &BedrockProvider{
		client: bedrockruntime.NewFromConfig(cfg),
		model:  model,
	}, nil
}

// Name returns the provider name
func (p *BedrockProvider) Name() string {
	return "Bedrock"
}

// Bedrock request/response structures (Claude's message format on Bedrock)
type bedrockClaudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type bedrockClaudeRequest struct {
	Messages         []bedrockClaudeMessage `json:"messages"`
	MaxTokens        int                    `json:"max_tokens"`
	AnthropicVersion string                 `json:"anthropic_version"`
}

type bedrockClaudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type bedrockClaudeResponse struct {
	Content []bedrockClaudeContentBlock `json:"content"`
}

// Generate sends the prompt as a single user message and returns the first
// content block of the reply.
func (p *BedrockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := bedrockClaudeRequest{
		Messages: []bedrockClaudeMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:        4096,
		AnthropicVersion: "bedrock-2023-05-31",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := p.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(p.model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        jsonData,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Bedrock API: %w", err)
	}

	var bedrockResp bedrockClaudeResponse
	if err := json.Unmarshal(resp.Body, &bedrockResp); err != nil {
		return "", fmt.Errorf("failed to decode Bedrock response: %w", err)
	}

	if len(bedrockResp.Content) == 0 {
		return "", fmt.Errorf("Bedrock returned no content")
	}
	return bedrockResp.Content[0].Text, nil
}
