package driven

import (
	"context"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
)

// CompletionService sends chat-completion requests to a language model.
//
// Implementations include:
//   - OpenAI-compatible endpoints (/v1/chat/completions)
//   - Ollama (native /api/chat)
type CompletionService interface {
	// Complete sends a single request and returns the first generated message.
	// There is no retry: one call is one attempt.
	Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResult, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
