package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider   = "llm.provider"
	keyLLMModel      = "llm.model"
	keyLLMPort       = "llm.port"
	keyLLMAPIKey     = "llm.api_key"
	keyWatchDebounce = "watch.debounce"
)

// SettingsService resolves settings from the config store and defaults.
type SettingsService struct {
	configStore driven.ConfigStore
	validator   driven.CompletionValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Values missing from the store use defaults.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := defaults
	settings.Provider = s.getProvider(keyLLMProvider, defaults.Provider)
	settings.Model = s.getString(keyLLMModel, defaults.Model)
	settings.Port = s.getInt(keyLLMPort, defaults.Port)
	settings.APIKey = s.getString(keyLLMAPIKey, defaults.APIKey)
	debounce, err := s.getDuration(keyWatchDebounce, defaults.Debounce)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	settings.Debounce = debounce

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// SetModel persists the model name.
func (s *SettingsService) SetModel(model string) error {
	if model == "" {
		return fmt.Errorf("%w: model is required", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyLLMModel, model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// SetCompletionValidator sets the validator used by ValidateCompletionConfig.
func (s *SettingsService) SetCompletionValidator(v driven.CompletionValidator) {
	s.validator = v
}

// ValidateCompletionConfig pings the completion endpoint of the stored settings.
func (s *SettingsService) ValidateCompletionConfig() error {
	if s.validator == nil {
		return errors.New("completion validator not configured")
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.validator.ValidateCompletion(settings)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

// getDuration accepts a Go duration string ("45s") or an integer number of seconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal, nil
	}
	if str := s.configStore.GetString(key); str != "" {
		d, err := time.ParseDuration(str)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
		}
		return d, nil
	}
	return time.Duration(s.configStore.GetInt(key)) * time.Second, nil
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return domain.AIProvider(val)
}
