// Package ai provides factory functions for creating completion service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	ollamallm "github.com/custodia-labs/diffwatch/internal/adapters/driven/llm/ollama"
	openaillm "github.com/custodia-labs/diffwatch/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateCompletionService creates the completion service selected by settings.
// No network call is made.
func CreateCompletionService(settings domain.Settings) (driven.CompletionService, error) {
	switch settings.Provider {
	case domain.AIProviderOllama:
		return createOllama(settings), nil

	case domain.AIProviderOpenAI, "":
		return createOpenAI(settings)

	default:
		return nil, fmt.Errorf("%w: unsupported provider: %s", domain.ErrInvalidInput, settings.Provider)
	}
}

// ValidateCompletionConfig creates a service from settings and pings it.
func ValidateCompletionConfig(settings domain.Settings) error {
	svc, err := CreateCompletionService(settings)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: service unreachable (%w)", domain.ErrCompletion, err)
	}
	return nil
}

// createOllama creates an Ollama completion service.
func createOllama(settings domain.Settings) driven.CompletionService {
	return ollamallm.NewCompletionService(ollamallm.Config{
		BaseURL: settings.BaseURL(),
		Model:   settings.Model,
	})
}

// createOpenAI creates an OpenAI-compatible completion service.
func createOpenAI(settings domain.Settings) (driven.CompletionService, error) {
	return openaillm.NewCompletionService(openaillm.Config{
		BaseURL: settings.BaseURL(),
		APIKey:  settings.APIKey,
		Model:   settings.Model,
	})
}
