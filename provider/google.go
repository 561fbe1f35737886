package provider

import "fmt"

// GoogleProvider implements model.Provider against the Gemini API's
// OpenAI-compatibility endpoint.
type GoogleProvider struct {
	chatClient
}

// NewGoogleProvider creates a Google (Gemini) provider.
func NewGoogleProvider(baseURL, apiKey, model string) (*GoogleProvider, error) {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("Google API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GoogleProvider{newChatClient("google", baseURL, apiKey, model)}, nil
}
