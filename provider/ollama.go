package provider

import (
	"context"
	"fmt"

	"github.com/ollama/ollama/api"

	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/ollama"
)

// OllamaProvider wraps ollama.Client to implement model.Provider.
//
// It converts between the pipeline's provider-agnostic types and the Ollama
// API types; the underlying client handles transport and streaming.
type OllamaProvider struct {
	client *ollama.Client
}

// NewOllamaProvider creates an Ollama provider.
//
// baseURL defaults to "http://localhost:11434" and model to the client's
// default local model when empty. Returns an error only for an unparsable
// URL; reachability is checked separately by the factory's health probe.
func NewOllamaProvider(baseURL, model string) (*OllamaProvider, error) {
	client, err := ollama.NewClient(baseURL, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	return &OllamaProvider{client: client}, nil
}

// Chat implements model.Provider by delegating to ChatWithTools with no tools.
func (p *OllamaProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	return p.ChatWithTools(ctx, messages, nil, callback)
}

// ChatWithTools implements model.Provider with type conversions in both
// directions. Models without tool support simply never produce tool calls.
func (p *OllamaProvider) ChatWithTools(ctx context.Context, messages []model.Message, tools []model.Tool, callback model.StreamCallback) error {
	ollamaMessages := ConvertToOllamaMessages(messages)

	var ollamaTools []api.Tool
	if len(tools) > 0 && p.client.SupportsToolCalling() {
		ollamaTools = convertToolsToOllama(tools)
	}

	ollamaCallback := func(chunk string, ollamaCalls []api.ToolCall) error {
		if callback == nil {
			return nil
		}
		return callback(chunk, ConvertToProviderToolCalls(ollamaCalls))
	}

	return p.client.ChatWithTools(ctx, ollamaMessages, ollamaTools, ollamaCallback)
}

// ListModels implements model.Provider (direct passthrough).
func (p *OllamaProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	return p.client.ListModels(ctx)
}

// GetModel implements model.Provider (direct passthrough).
func (p *OllamaProvider) GetModel() string {
	return p.client.GetModel()
}

// GetDisplayName implements model.Provider. Ollama model names have no
// vendor prefix, so this matches GetModel.
func (p *OllamaProvider) GetDisplayName() string {
	return p.client.GetModel()
}

// SetModel implements model.Provider (direct passthrough).
func (p *OllamaProvider) SetModel(model string) {
	p.client.SetModel(model)
}

// Ping implements model.Provider (direct passthrough).
func (p *OllamaProvider) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}
