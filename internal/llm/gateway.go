package llm

import (
	"context"
	"fmt"
	"log"
	"time"
)

const emptyReplyPlaceholder = "(No response from model)"

// Gateway wraps a Provider with bounded retry. Failed attempts back off
// with doubling delays; once every attempt is spent the caller gets a
// degraded sentinel reply instead of an error.
type Gateway struct {
	provider    Provider
	maxAttempts int
	baseDelay   time.Duration
}

// NewGateway creates a gateway around the provider. Non-positive arguments
// fall back to 3 attempts and a one second base delay.
func NewGateway(provider Provider, maxAttempts int, baseDelay time.Duration) *Gateway {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	return &Gateway{
		provider:    provider,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}
}

// Generate calls the provider, retrying failures until the attempt budget
// runs out. The wait between attempts doubles each time and honors ctx
// cancellation; there is no wait after the final attempt. Degraded is true
// only for the sentinel reply.
func (g *Gateway) Generate(ctx context.Context, prompt string) (reply string, degraded bool) {
	delay := g.baseDelay
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		text, err := g.provider.Generate(ctx, prompt)
		if err == nil {
			if text == "" {
				text = emptyReplyPlaceholder
			}
			return text, false
		}
		log.Printf("Attempt %d failed: %v", attempt, err)

		if attempt == g.maxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return g.degradedReply(), true
		case <-timer.C:
		}
		delay *= 2
	}
	return g.degradedReply(), true
}

func (g *Gateway) degradedReply() string {
	return fmt.Sprintf("Error: Failed to get a response from %s after multiple attempts.", g.provider.Name())
}
