package driven

import (
	"context"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
)

// DiffSource produces the uncommitted change set of a working tree.
type DiffSource interface {
	// Diff compares the working tree at root with HEAD.
	// A non-zero exit of the underlying tool yields a *domain.DiffCommandError.
	Diff(ctx context.Context, root string) (domain.RawDiff, error)
}

// DiffNormaliser rewrites a unified diff before it is sent to the model.
// Implementations must be pure and idempotent.
type DiffNormaliser interface {
	Normalise(diff string) string
}

// RepositoryInspector reports the checked-out state of a repository.
type RepositoryInspector interface {
	Inspect(root string) (domain.RepositoryInfo, error)
}
