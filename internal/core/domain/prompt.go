package domain

// Role identifies the author of a prompt message.
type Role string

// Roles used in completion requests.
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// PromptMessage is one entry of a chat-completion message list.
type PromptMessage struct {
	Role    Role
	Content string
}

// CompletionRequest is the payload sent to a completion service.
// Temperature is always zero so that identical diffs produce identical drafts.
type CompletionRequest struct {
	Model       string
	Messages    []PromptMessage
	Temperature float64
}

// NewCompletionRequest builds a greedy (temperature 0) request.
func NewCompletionRequest(model string, messages []PromptMessage) CompletionRequest {
	return CompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0,
	}
}

// CompletionResult is the text generated by the completion service.
type CompletionResult struct {
	Text string
}
