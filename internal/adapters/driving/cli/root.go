// Package cli provides the diffwatch command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driving"
	"github.com/custodia-labs/diffwatch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Runtime is everything needed to build an orchestrator for one invocation.
type Runtime struct {
	Settings   domain.Settings
	Repository domain.RepositoryConfig
	Reporter   driven.Reporter
	ConfigDir  string
}

// SettingsLoader opens the settings service for configDir.
// An empty configDir selects ~/.diffwatch.
type SettingsLoader func(configDir string) (driving.SettingsService, error)

// OrchestratorFactory builds the orchestrator for a validated repository.
type OrchestratorFactory func(rt Runtime) (driving.Orchestrator, error)

var (
	settingsLoader      SettingsLoader
	orchestratorFactory OrchestratorFactory
	repositoryInspector driven.RepositoryInspector
)

// SetSettingsLoader sets how settings are loaded.
func SetSettingsLoader(loader SettingsLoader) {
	settingsLoader = loader
}

// SetOrchestratorFactory sets how orchestrators are built.
func SetOrchestratorFactory(factory OrchestratorFactory) {
	orchestratorFactory = factory
}

// SetRepositoryInspector sets the inspector used for the watch banner.
// A nil inspector omits branch information.
func SetRepositoryInspector(inspector driven.RepositoryInspector) {
	repositoryInspector = inspector
}

const (
	watchHint    = "Try --watch to watch for file changes and run continuously"
	stopHint     = "Press Ctrl+C to stop..."
	stoppedLabel = "Stopped watching repository"
)

var (
	flagRepository string
	flagWatch      bool
	flagModel      string
	flagPort       int
	flagAPIKey     string
	flagProvider   string
	flagDebounce   time.Duration
	flagConfigDir  string
	flagCheck      bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "diffwatch",
	Short: "Suggest commit messages for uncommitted changes",
	Long: `diffwatch reads the uncommitted changes of a git repository and asks a
local language model for a commit message draft.

Without --watch the repository is analysed once. With --watch every settled
change to the working tree produces a new suggestion until interrupted.`,
	Example: `  diffwatch --repository .
  diffwatch --repository ~/src/project --watch --debounce 5s
  diffwatch --repository . --provider ollama --model llama3.2 --check`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.OutOrStdout())
		logger.SetErrorOutput(cmd.ErrOrStderr())
		logger.SetVerbose(flagVerbose)
	},
	RunE: runRoot,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagRepository, "repository", "r", "", "path to the git repository")
	flags.BoolVarP(&flagWatch, "watch", "w", false, "watch for file changes and run continuously")
	flags.StringVar(&flagModel, "model", domain.DefaultModel, "model name sent to the completion endpoint")
	flags.IntVar(&flagPort, "port", domain.DefaultPort, "local port of the completion endpoint")
	flags.StringVar(&flagAPIKey, "api-key", domain.DefaultAPIKey, "bearer credential for the completion endpoint")
	flags.StringVar(&flagProvider, "provider", string(domain.AIProviderOpenAI), "completion protocol: openai or ollama")
	flags.DurationVar(&flagDebounce, "debounce", domain.DefaultDebounce, "minimum time between two suggestions")
	flags.BoolVar(&flagCheck, "check", false, "check the completion endpoint is reachable and exit")
	_ = rootCmd.MarkFlagRequired("repository")

	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config and prompt directory (default ~/.diffwatch)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	repo, err := domain.NewRepositoryConfig(settings.Repository)
	if err != nil {
		return err
	}

	if orchestratorFactory == nil {
		return errors.New("orchestrator factory not configured")
	}
	orchestrator, err := orchestratorFactory(Runtime{
		Settings:   settings,
		Repository: repo,
		Reporter:   NewConsoleReporter(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		ConfigDir:  flagConfigDir,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	switch {
	case flagCheck:
		if err := orchestrator.Check(ctx); err != nil {
			return err
		}
		fmt.Fprintf(out, "Completion endpoint reachable (%s, %s)\n", settings.Provider, settings.BaseURL())
		return nil

	case settings.Watch:
		fmt.Fprintf(out, "Watching repository: %s\n", repo.RootPath())
		printRepositoryInfo(out, repo)
		fmt.Fprintf(out, "%s\n\n", stopHint)

		if err := orchestrator.Watch(ctx); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", stoppedLabel)
		return nil

	default:
		fmt.Fprintln(out, watchHint)
		return orchestrator.RunOnce(ctx)
	}
}

// resolveSettings applies explicit flags over the stored settings.
func resolveSettings(cmd *cobra.Command) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if settingsLoader != nil {
		svc, err := settingsLoader(flagConfigDir)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
		}
		settings, err = svc.Get()
		if err != nil {
			return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		settings.Model = flagModel
	}
	if flags.Changed("port") {
		settings.Port = flagPort
	}
	if flags.Changed("api-key") {
		settings.APIKey = flagAPIKey
	}
	if flags.Changed("provider") {
		settings.Provider = domain.AIProvider(flagProvider)
	}
	if flags.Changed("debounce") {
		settings.Debounce = flagDebounce
	}
	settings.Repository = flagRepository
	settings.Watch = flagWatch
	settings.Verbose = flagVerbose

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func printRepositoryInfo(out io.Writer, repo domain.RepositoryConfig) {
	if repositoryInspector == nil {
		return
	}
	info, err := repositoryInspector.Inspect(repo.RootPath())
	if err != nil {
		logger.Debug("Repository metadata unavailable: %v", err)
		return
	}
	if info.Branch != "" {
		fmt.Fprintf(out, "On branch %s at %s\n", info.Branch, info.Head)
	} else {
		fmt.Fprintf(out, "Detached HEAD at %s\n", info.Head)
	}
}
