// Package openai provides a completion service adapter for OpenAI-compatible
// chat-completion endpoints such as a local llama.cpp or vLLM server.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
)

// Ensure CompletionService implements the interface.
var _ driven.CompletionService = (*CompletionService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://127.0.0.1:11434/v1"
	DefaultTimeout = 120 * time.Second
)

// maxErrorBody caps how much of an error response is echoed back.
const maxErrorBody = 512

// Config holds configuration for the OpenAI-compatible completion service.
type Config struct {
	// BaseURL is the API base URL including the /v1 suffix.
	BaseURL string

	// APIKey is sent as a bearer token. Local servers accept any value.
	APIKey string

	// Model is the model name sent with every request.
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// CompletionService sends requests to /chat/completions.
type CompletionService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// chatCompletionRequest is the /chat/completions request format.
// Temperature is always serialised so that zero is sent explicitly.
type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	Temperature float64             `json:"temperature"`
}

// chatCompletionMsg is the chat message format.
type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewCompletionService creates a new OpenAI-compatible completion service.
func NewCompletionService(cfg Config) (*CompletionService, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("openai: model is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = domain.DefaultAPIKey
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &CompletionService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}, nil
}

// Complete sends one chat-completion request and returns the first choice.
func (s *CompletionService) Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	model := req.Model
	if model == "" {
		model = s.model
	}

	messages := make([]chatCompletionMsg, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = chatCompletionMsg{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	jsonBody, err := json.Marshal(chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return domain.CompletionResult{}, fmt.Errorf("%w: marshal request: %w", domain.ErrCompletion, err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return domain.CompletionResult{}, fmt.Errorf("%w: create request: %w", domain.ErrCompletion, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return domain.CompletionResult{}, fmt.Errorf("%w: send request: %w", domain.ErrCompletion, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.CompletionResult{}, fmt.Errorf("%w: read response: %w", domain.ErrCompletion, err)
	}

	if resp.StatusCode != http.StatusOK {
		return domain.CompletionResult{}, fmt.Errorf("%w: openai error (status %d): %s",
			domain.ErrCompletion, resp.StatusCode, truncate(body))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return domain.CompletionResult{}, fmt.Errorf("%w: decode response: %w", domain.ErrCompletion, err)
	}

	if chatResp.Error != nil {
		return domain.CompletionResult{}, fmt.Errorf("%w: openai error: %s", domain.ErrCompletion, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return domain.CompletionResult{}, fmt.Errorf("%w: openai: no response choices returned", domain.ErrCompletion)
	}

	return domain.CompletionResult{Text: chatResp.Choices[0].Message.Content}, nil
}

// ModelName returns the name of the model being used.
func (s *CompletionService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the /models endpoint.
// This is a lightweight check that does not run inference.
func (s *CompletionService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("openai: failed to create ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("openai: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("openai: API returned status %d: %s", resp.StatusCode, truncate(body))
	}
	return nil
}

// Close releases resources.
func (s *CompletionService) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
