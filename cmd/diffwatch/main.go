// Command diffwatch suggests commit messages for uncommitted changes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/diffwatch/internal/adapters/driven/ai"
	"github.com/custodia-labs/diffwatch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/diffwatch/internal/adapters/driven/git"
	"github.com/custodia-labs/diffwatch/internal/adapters/driven/watcher/fsnotify"
	"github.com/custodia-labs/diffwatch/internal/adapters/driving/cli"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driving"
	"github.com/custodia-labs/diffwatch/internal/core/services"
	"github.com/custodia-labs/diffwatch/internal/logger"
	"github.com/custodia-labs/diffwatch/internal/normalisers/hunk"
)

func main() {
	cli.SetSettingsLoader(loadSettings)
	cli.SetRepositoryInspector(git.NewInspector())
	cli.SetOrchestratorFactory(buildOrchestrator)

	err := cli.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	svc := services.NewSettingsService(store)
	svc.SetCompletionValidator(ai.NewValidator())
	return svc, nil
}

// buildOrchestrator wires the adapters for one invocation. The repository
// has already been validated; nothing here touches the network.
func buildOrchestrator(rt cli.Runtime) (driving.Orchestrator, error) {
	llm, err := ai.CreateCompletionService(rt.Settings)
	if err != nil {
		return nil, err
	}

	promptDir := ""
	if rt.ConfigDir != "" {
		promptDir = filepath.Join(rt.ConfigDir, "prompts")
	}
	prompts, err := file.NewPromptStore(promptDir)
	if err != nil {
		return nil, err
	}

	extractor := services.NewDiffExtractor(git.NewDiffSource(), hunk.New())
	pipeline := services.NewPipeline(
		extractor,
		services.NewPromptBuilderFromStore(prompts),
		llm,
		rt.Reporter,
	)

	return services.NewOrchestrator(
		rt.Repository,
		pipeline,
		fsnotify.New(),
		llm,
		rt.Settings.Debounce,
	), nil
}
