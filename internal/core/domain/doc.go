// Package domain defines the core types for diffwatch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ChangeEvent: A file-system notification under the watched root
//   - RawDiff / NormalizedDiff: The uncommitted change set
//   - PromptMessage / CompletionRequest: The request sent to the model
//   - RepositoryConfig / Settings: Validated startup configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
