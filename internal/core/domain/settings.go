package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// Default settings values.
const (
	DefaultModel    = "commit-bot-llama-1.0-1B"
	DefaultPort     = 11434
	DefaultAPIKey   = "EMPTY"
	DefaultDebounce = 10 * time.Second
)

// AIProvider identifies the protocol spoken by the completion endpoint.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOpenAI is any OpenAI-compatible /v1/chat/completions endpoint.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderOllama is a local Ollama instance using its native /api/chat.
	AIProviderOllama AIProvider = "ollama"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOpenAI, AIProviderOllama:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOpenAI:
		return "OpenAI-compatible (/v1)"
	case AIProviderOllama:
		return "Ollama (native)"
	default:
		return unknownDescription
	}
}

// Settings holds the resolved runtime configuration.
type Settings struct {
	// Repository is the path given on the command line, before validation.
	Repository string

	// Watch selects continuous mode.
	Watch bool

	// Model is the model name sent to the completion endpoint.
	Model string

	// Port is the local port of the completion endpoint.
	Port int

	// APIKey is forwarded as a bearer credential. May be a placeholder.
	APIKey string

	// Provider selects the completion protocol.
	Provider AIProvider

	// Debounce is the minimum time between two pipeline triggers.
	Debounce time.Duration

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultSettings returns settings with built-in defaults applied.
func DefaultSettings() Settings {
	return Settings{
		Model:    DefaultModel,
		Port:     DefaultPort,
		APIKey:   DefaultAPIKey,
		Provider: AIProviderOpenAI,
		Debounce: DefaultDebounce,
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidInput, s.Port)
	}
	if !s.Provider.IsValid() {
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidInput, s.Provider)
	}
	if s.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidInput)
	}
	return nil
}

// BaseURL returns the endpoint root for the configured provider.
func (s Settings) BaseURL() string {
	if s.Provider == AIProviderOllama {
		return fmt.Sprintf("http://127.0.0.1:%d", s.Port)
	}
	return fmt.Sprintf("http://127.0.0.1:%d/v1", s.Port)
}
