package provider

import "fmt"

// XAIProvider implements model.Provider against xAI's OpenAI-compatible API.
type XAIProvider struct {
	chatClient
}

// NewXAIProvider creates an xAI (Grok) provider.
func NewXAIProvider(baseURL, apiKey, model string) (*XAIProvider, error) {
	if baseURL == "" {
		baseURL = "https://api.x.ai/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("xAI API key is required")
	}
	if model == "" {
		model = "grok-3-mini"
	}

	return &XAIProvider{newChatClient("xai", baseURL, apiKey, model)}, nil
}
