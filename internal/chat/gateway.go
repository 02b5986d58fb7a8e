package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/alertdeskhq/alertdesk/internal/llm"
	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

const (
	// historyLimit bounds the conversation history passed downstream.
	historyLimit = 10
	// chatTemperature keeps replies grounded rather than creative.
	chatTemperature = 0.2
	chatMaxTokens   = 1024
)

// Message is one turn of conversation as received from a client.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is the gateway's answer for one conversational turn.
type Reply struct {
	Content  string
	Scenario scenario.Key
	Detected bool
}

// Gateway grounds a conversation on a fresh context snapshot and
// delegates to the configured LLM provider.
type Gateway struct {
	assembler *Assembler
	provider  llm.Provider
	model     string
}

// NewGateway creates a Gateway. The provider may be nil when no
// credential is configured; Chat then fails with ErrNotConfigured.
func NewGateway(assembler *Assembler, provider llm.Provider, model string) *Gateway {
	return &Gateway{assembler: assembler, provider: provider, model: model}
}

// Configured reports whether an LLM provider is available.
func (g *Gateway) Configured() bool { return g.provider != nil }

// Chat answers the conversation's latest user message grounded on a
// fresh snapshot. History is bounded to the last historyLimit messages
// before delegation; the provider's reply is returned verbatim.
func (g *Gateway) Chat(ctx context.Context, history []Message) (*Reply, error) {
	if g.provider == nil {
		return nil, fmt.Errorf("llm provider is not configured")
	}

	utterance := lastUserMessage(history)

	snapshot, err := g.assembler.BuildSnapshot(ctx, utterance)
	if err != nil {
		return nil, fmt.Errorf("assembling context: %w", err)
	}

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleSystem, Content: buildGroundingPrompt(snapshot.Text)},
	}
	for _, m := range history {
		messages = append(messages, llm.Message{Role: toRole(m.Role), Content: m.Content})
	}

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("conversation service: %w", err)
	}

	return &Reply{
		Content:  strings.TrimSpace(resp.Content),
		Scenario: snapshot.Scenario,
		Detected: snapshot.Detected,
	}, nil
}

// lastUserMessage returns the content of the most recent user-role
// message, or the empty string when there is none.
func lastUserMessage(history []Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == string(llm.RoleUser) {
			return history[i].Content
		}
	}
	return ""
}

// toRole maps a wire role onto the provider roles, defaulting unknown
// values to user.
func toRole(role string) llm.Role {
	switch role {
	case string(llm.RoleSystem):
		return llm.RoleSystem
	case string(llm.RoleAssistant):
		return llm.RoleAssistant
	default:
		return llm.RoleUser
	}
}
