// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DiffSource: Produces the working-tree diff against HEAD (git subprocess)
//   - DiffNormaliser: Strips hunk-header annotations
//   - CompletionService: Chat-completion endpoint (OpenAI-compatible or Ollama)
//   - FileWatcher: Recursive file-system notifications (fsnotify)
//   - Reporter: Console output of pipeline outcomes
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PromptStore: User-editable prompts. Without it, embedded defaults are used.
//   - RepositoryInspector: Branch/HEAD lookup for the startup banner.
//   - CompletionValidator: Endpoint reachability for `settings check`.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
