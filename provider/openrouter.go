package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/Stefan824/TradingAgents/ollama"
)

// OpenRouterProvider implements model.Provider against OpenRouter's
// OpenAI-compatible API. Model names carry a vendor prefix
// ("meta-llama/llama-3.2-90b-instruct") which is stripped for display.
type OpenRouterProvider struct {
	chatClient
}

// NewOpenRouterProvider creates an OpenRouter provider.
func NewOpenRouterProvider(baseURL, apiKey, model string) (*OpenRouterProvider, error) {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required")
	}
	if model == "" {
		model = "meta-llama/llama-3.2-90b-instruct"
	}

	return &OpenRouterProvider{newChatClient("openrouter", baseURL, apiKey, model)}, nil
}

// ListModels implements model.Provider with vendor-prefix stripping.
func (p *OpenRouterProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	models, err := p.chatClient.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	for i := range models {
		models[i].Name = stripVendorPrefix(models[i].InternalName)
	}
	return models, nil
}

// GetDisplayName implements model.Provider.
// "qwen/qwen3-coder:free" -> "qwen3-coder:free"
func (p *OpenRouterProvider) GetDisplayName() string {
	return stripVendorPrefix(p.model)
}

// stripVendorPrefix removes vendor prefixes from OpenRouter model names.
func stripVendorPrefix(modelName string) string {
	if idx := strings.Index(modelName, "/"); idx != -1 {
		return modelName[idx+1:]
	}
	return modelName
}
