package driving

import (
	"context"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
)

// Analyser runs the change-analysis pipeline once:
// extract diff, build prompt, request completion.
type Analyser interface {
	// Analyse returns a commit message suggestion for the working tree at root.
	// Returns domain.ErrNoChanges when the tree matches HEAD.
	Analyse(ctx context.Context, root string) (domain.Suggestion, error)

	// Run calls Analyse and reports the outcome instead of returning it.
	// The returned error is for callers that need to know the outcome;
	// it has already been reported.
	Run(ctx context.Context, root string) error
}

// Orchestrator selects between one-shot and continuous operation.
type Orchestrator interface {
	// RunOnce runs the pipeline a single time, ignoring any debounce state.
	RunOnce(ctx context.Context) error

	// Watch runs the pipeline on settled changes until ctx is cancelled.
	Watch(ctx context.Context) error

	// Check verifies the completion service is reachable.
	Check(ctx context.Context) error
}
