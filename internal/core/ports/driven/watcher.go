package driven

import (
	"context"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
)

// EventHandler receives change events. It is called from a single goroutine,
// one event at a time; the next event is not delivered until it returns.
type EventHandler func(ctx context.Context, ev domain.ChangeEvent)

// FileWatcher subscribes to file-system notifications under a root.
type FileWatcher interface {
	// Watch subscribes recursively to root and blocks until ctx is cancelled.
	// A handler call in progress when ctx is cancelled is allowed to finish.
	// OS watch resources are released before Watch returns.
	Watch(ctx context.Context, root string, handle EventHandler) error
}
