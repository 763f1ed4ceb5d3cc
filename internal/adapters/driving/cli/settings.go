package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the stored defaults in config.toml.

Flags given on the command line always take precedence over stored settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the stored completion endpoint is reachable",
	Args:  cobra.NoArgs,
	RunE:  runSettingsCheck,
}

var settingsModelCmd = &cobra.Command{
	Use:   "model <name>",
	Short: "Set the default model",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsModel,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsModelCmd)
	settingsCmd.AddCommand(settingsCheckCmd)
	rootCmd.AddCommand(settingsCmd)
}

func loadSettingsService() (driving.SettingsService, error) {
	if settingsLoader == nil {
		return nil, errors.New("settings service not configured")
	}
	return settingsLoader(flagConfigDir)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := loadSettingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.Model)
	cmd.Printf("  Base URL: %s\n", settings.BaseURL())
	cmd.Printf("  API Key: %s\n", maskAPIKey(settings.APIKey))
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Debounce: %s\n", settings.Debounce)

	return nil
}

func runSettingsModel(cmd *cobra.Command, args []string) error {
	svc, err := loadSettingsService()
	if err != nil {
		return err
	}

	if err := svc.SetModel(args[0]); err != nil {
		return fmt.Errorf("failed to set model: %w", err)
	}
	cmd.Printf("Set model to: %s\n", args[0])
	return nil
}

func runSettingsCheck(cmd *cobra.Command, _ []string) error {
	svc, err := loadSettingsService()
	if err != nil {
		return err
	}

	if err := svc.ValidateCompletionConfig(); err != nil {
		return fmt.Errorf("completion endpoint check failed: %w", err)
	}
	cmd.Println("Completion endpoint reachable")
	return nil
}

// maskAPIKey hides all but the edges of a credential. The placeholder key
// is shown as is.
func maskAPIKey(key string) string {
	if key == domain.DefaultAPIKey {
		return key
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
