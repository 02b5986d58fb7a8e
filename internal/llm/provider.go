package llm

import "context"

// Provider is a chat completion backend. The alert chat talks to
// OpenAI and Ollama through this interface interchangeably.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name identifies the backend in logs.
	Name() string
}
