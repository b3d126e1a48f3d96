package llm

import (
	"context"
	"net/http"
	"time"
)

const externalHTTPTimeout = 30 * time.Second

// Provider is one hosted model behind a uniform text-in, text-out call.
type Provider interface {
	// Generate sends one prompt and returns the model's raw text reply.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (for logging and degraded replies)
	Name() string
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: externalHTTPTimeout}
}
