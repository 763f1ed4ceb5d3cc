package driving

import "github.com/custodia-labs/diffwatch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves settings from configuration, falling back to defaults.
	Get() (domain.Settings, error)

	// SetModel persists the model name.
	SetModel(model string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// ValidateCompletionConfig pings the completion endpoint described by
	// the stored settings.
	ValidateCompletionConfig() error
}
