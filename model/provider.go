package model

import (
	"context"

	"github.com/Stefan824/TradingAgents/ollama"
)

// Provider abstracts LLM backends (remote APIs, local Ollama, llama.cpp
// server, mock) using provider-agnostic types from the model layer.
//
// The interface lives in the model package (not provider) to avoid import
// cycles: provider implementations import model, and the graph layer uses
// Provider without importing the provider package.
//
// A Provider is the invocable chat handle itself: construct it once per
// thinking role per run, then invoke Chat/ChatWithTools. Implementations
// are stateless per call and safe for read-only concurrent use only.
type Provider interface {
	// Chat sends messages and streams the reply back via callback.
	Chat(ctx context.Context, messages []Message, callback StreamCallback) error

	// ChatWithTools sends messages with available tools and streams the
	// reply. Models without tool support simply stream text and deliver
	// no tool calls.
	ChatWithTools(ctx context.Context, messages []Message, tools []Tool, callback StreamCallback) error

	// ListModels returns models available on this backend.
	ListModels(ctx context.Context) ([]ollama.ModelInfo, error)

	// GetModel returns the active model name as passed to the API.
	GetModel() string

	// GetDisplayName returns the model name formatted for display.
	// For OpenRouter this strips the vendor prefix
	// (e.g. "qwen/qwen3-coder:free" -> "qwen3-coder:free").
	GetDisplayName() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the backend is reachable.
	Ping(ctx context.Context) error
}

// ThinkingRole identifies which pipeline role a provider serves. Every run
// configures exactly two providers: a deep thinker for judge/manager agents
// and a quick thinker for analysts, trader, and signal extraction.
type ThinkingRole string

const (
	RoleDeep  ThinkingRole = "deep"
	RoleQuick ThinkingRole = "quick"
)

// Complete sends a system prompt plus user prompt through a provider and
// collects the streamed reply into a single string. This is the common
// invocation shape for pipeline agents, which consume whole reports rather
// than streams.
func Complete(ctx context.Context, p Provider, system, user string) (string, error) {
	messages := []Message{SystemMessage(system), UserMessage(user)}

	var out []byte
	err := p.Chat(ctx, messages, func(chunk string, _ []ToolCall) error {
		out = append(out, chunk...)
		return nil
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
