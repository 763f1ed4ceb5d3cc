package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driving"
	"github.com/custodia-labs/diffwatch/internal/logger"
)

// Ensure Orchestrator implements the interface.
var _ driving.Orchestrator = (*Orchestrator)(nil)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// Orchestrator owns the analysis pipeline and the watcher lifecycle for one repository.
type Orchestrator struct {
	repo     domain.RepositoryConfig
	analyser driving.Analyser
	watcher  driven.FileWatcher
	llm      driven.CompletionService
	debounce time.Duration
}

// NewOrchestrator creates an orchestrator for an already validated repository.
func NewOrchestrator(
	repo domain.RepositoryConfig,
	analyser driving.Analyser,
	watcher driven.FileWatcher,
	llm driven.CompletionService,
	debounce time.Duration,
) *Orchestrator {
	return &Orchestrator{
		repo:     repo,
		analyser: analyser,
		watcher:  watcher,
		llm:      llm,
		debounce: debounce,
	}
}

// RunOnce runs the pipeline exactly once, independent of any debounce state.
// Pipeline outcomes are reported, not returned; only cancellation is an error.
func (o *Orchestrator) RunOnce(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_ = o.analyser.Run(ctx, o.repo.RootPath())
	return nil
}

// Watch blocks until ctx is cancelled, running the pipeline on settled changes.
// It returns nil after a graceful stop.
func (o *Orchestrator) Watch(ctx context.Context) error {
	gate := NewDebounceGate(o.debounce)
	rw := NewRepositoryWatcher(o.repo.RootPath(), gate, o.analyser, o.watcher)
	if err := rw.Run(ctx); err != nil {
		return fmt.Errorf("watch %s: %w", o.repo.RootPath(), err)
	}
	return nil
}

// Check pings the completion service.
func (o *Orchestrator) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	logger.Debug("Pinging %s", o.llm.ModelName())
	if err := o.llm.Ping(ctx); err != nil {
		return fmt.Errorf("%w: service unreachable: %w", domain.ErrCompletion, err)
	}
	return nil
}
