package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/ollama"
)

// chatClient is the shared implementation behind every OpenAI-compatible
// backend: OpenAI itself, OpenRouter, Google's and xAI's compatibility
// endpoints, and a local llama.cpp server. Concrete provider types embed it
// and override only what differs (display names, model listing).
type chatClient struct {
	id      string // provider ID reported in ModelInfo and errors
	client  openai.Client
	model   string
	baseURL string
}

func newChatClient(id, baseURL, apiKey, model string) chatClient {
	opts := []option.RequestOption{option.WithBaseURL(baseURL)}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	return chatClient{
		id:      id,
		client:  openai.NewClient(opts...),
		model:   model,
		baseURL: baseURL,
	}
}

// Chat implements model.Provider by delegating to ChatWithTools with no tools.
func (c *chatClient) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	return c.ChatWithTools(ctx, messages, nil, callback)
}

// ChatWithTools implements model.Provider with streaming support.
//
// Tool calls finished by the accumulator are delivered through the callback
// as they complete. Models without tool support stream plain text and never
// produce tool calls; callers treat that as empty structured output.
func (c *chatClient) ChatWithTools(ctx context.Context, messages []model.Message, tools []model.Tool, callback model.StreamCallback) error {
	params := openai.ChatCompletionNewParams{
		Messages: ConvertToOpenAIMessages(messages),
		Model:    openai.ChatModel(c.model),
	}

	if len(tools) > 0 {
		params.Tools = convertToolsToOpenAI(tools)
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)
	acc := openai.ChatCompletionAccumulator{}

	for stream.Next() {
		chunk := stream.Current()
		acc.AddChunk(chunk)

		if tool, ok := acc.JustFinishedToolCall(); ok && callback != nil {
			toolCall := model.ToolCall{
				Name:      tool.Name,
				Arguments: ParseToolArguments(tool.Arguments),
			}
			if err := callback("", []model.ToolCall{toolCall}); err != nil {
				return err
			}
		}

		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			if callback != nil {
				if err := callback(chunk.Choices[0].Delta.Content, nil); err != nil {
					return err
				}
			}
		}
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("%s streaming error: %w", c.id, err)
	}

	return nil
}

// ListModels implements model.Provider.
func (c *chatClient) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	modelsPage, err := c.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s models: %w", c.id, err)
	}

	result := make([]ollama.ModelInfo, 0, len(modelsPage.Data))
	for _, m := range modelsPage.Data {
		result = append(result, ollama.ModelInfo{
			Name:         m.ID,
			InternalName: m.ID,
			Size:         0, // no size info over the API
			Provider:     c.id,
		})
	}

	return result, nil
}

// GetModel implements model.Provider.
func (c *chatClient) GetModel() string {
	return c.model
}

// GetDisplayName implements model.Provider.
func (c *chatClient) GetDisplayName() string {
	return c.model
}

// SetModel implements model.Provider.
func (c *chatClient) SetModel(model string) {
	c.model = model
}

// Ping implements model.Provider by attempting to list models.
func (c *chatClient) Ping(ctx context.Context) error {
	if _, err := c.client.Models.List(ctx); err != nil {
		return fmt.Errorf("%s ping failed: %w", c.id, err)
	}
	return nil
}

// OpenAIProvider implements model.Provider against the OpenAI API.
type OpenAIProvider struct {
	chatClient
}

// NewOpenAIProvider creates an OpenAI provider.
//
// baseURL defaults to "https://api.openai.com/v1"; model defaults to
// "gpt-4o-mini". An API key is required.
func NewOpenAIProvider(baseURL, apiKey, model string) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIProvider{newChatClient("openai", baseURL, apiKey, model)}, nil
}
