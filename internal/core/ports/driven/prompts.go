package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt for the given name.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used throughout the application.
const (
	// PromptCommitSystem is the task description sent as the system message.
	PromptCommitSystem = "commit_system"

	// PromptCommitQuestion is the instruction placed in the question block.
	PromptCommitQuestion = "commit_question"
)

// DefaultPrompts holds the built-in prompt text for every well-known name.
// Stores fall back to these when no user override exists.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var DefaultPrompts = map[string]string{
	PromptCommitSystem: `## Task
Generate a concise yet informative git commit message draft from a ` + "`git diff`" + ` output. The message should include a title (under 50 characters) and optionally a body for additional context when necessary. The commit message should summarize the changes by identifying what was added, modified, or removed, and explain the purpose or impact of those changes in a clear, technical manner.

## Inputs
The raw output string from the ` + "`git diff`" + ` command, which shows changes between commits, commit and working tree, etc. This includes file paths, added/removed lines, and change context across multiple files. The diff may include code modifications, new files, deleted files, and comments indicating the nature of changes.

## Outputs
A string in conventional git commit message format: a title line (<=50 characters) followed by an optional blank line and a body paragraph for elaboration. The body should provide specific details about the changes made, including functionality added, bugs fixed, or architectural improvements. Omit the body if the title sufficiently describes the changes.`,

	PromptCommitQuestion: `Process the context according to the task description.`,
}
