package services

import (
	"context"
	"strings"
	"time"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driving"
	"github.com/custodia-labs/diffwatch/internal/logger"
)

// RepositoryWatcher runs the analysis pipeline when the working tree changes,
// at most once per debounce interval.
type RepositoryWatcher struct {
	root     string
	gate     *DebounceGate
	analyser driving.Analyser
	watcher  driven.FileWatcher
	now      func() time.Time
}

// NewRepositoryWatcher creates a watcher for root.
func NewRepositoryWatcher(
	root string,
	gate *DebounceGate,
	analyser driving.Analyser,
	watcher driven.FileWatcher,
) *RepositoryWatcher {
	return &RepositoryWatcher{
		root:     root,
		gate:     gate,
		analyser: analyser,
		watcher:  watcher,
		now:      time.Now,
	}
}

// SetClock replaces the time source used for gate decisions. Used by tests.
func (w *RepositoryWatcher) SetClock(now func() time.Time) {
	w.now = now
}

// Run subscribes to the repository and blocks until ctx is cancelled.
func (w *RepositoryWatcher) Run(ctx context.Context) error {
	logger.Debug("Watching %s with debounce %s", w.root, w.gate.Interval())
	return w.watcher.Watch(ctx, w.root, func(ctx context.Context, ev domain.ChangeEvent) {
		w.HandleEvent(ctx, ev)
	})
}

// HandleEvent filters ev, consults the gate and, when allowed, runs the
// pipeline synchronously. It reports whether a run was triggered.
//
// The pipeline runs detached from ctx cancellation so an interrupt never
// aborts a run half way; the watch loop stops once it returns.
func (w *RepositoryWatcher) HandleEvent(ctx context.Context, ev domain.ChangeEvent) bool {
	if ev.IsDirectory {
		return false
	}
	// Substring match: any path mentioning the metadata dir name is ignored.
	if strings.Contains(ev.Path, domain.MetadataDirName) {
		return false
	}

	if !w.gate.TryTrigger(w.now()) {
		logger.Debug("Debounced %s event on %s", ev.Op, ev.Path)
		return false
	}

	logger.Debug("Triggered by %s event on %s", ev.Op, ev.Path)
	_ = w.analyser.Run(context.WithoutCancel(ctx), w.root)
	return true
}
