package llm

// Role identifies who authored a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn handed to a provider.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest carries the parameters for one completion call.
// Model falls back to the provider's configured default when empty.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse is the assistant's reply text.
type CompletionResponse struct {
	Content string
}
