package driven

import "github.com/custodia-labs/diffwatch/internal/core/domain"

// CompletionValidator checks that the completion endpoint described by
// settings is reachable. It is used to test stored configuration without
// running the pipeline.
type CompletionValidator interface {
	ValidateCompletion(settings domain.Settings) error
}
