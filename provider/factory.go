package provider

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Stefan824/TradingAgents/config"
	"github.com/Stefan824/TradingAgents/model"
)

// New creates a provider based on configuration.
//
// This is the centralized factory for all backend types. It dispatches on
// Config.Type, validates the model name where validation is possible, and
// runs an advisory health probe for local-server backends.
//
// Returns an error if:
//   - the provider type is unknown (*UnsupportedProviderError)
//   - a local-weights provider is missing its GGUF file
//     (*ModelFileNotFoundError, naming the thinking role)
//   - the provider-specific constructor fails (e.g. missing API key)
//
// An unreachable local server is NOT a construction error: the probe logs a
// warning and construction succeeds, so the first real call surfaces the
// actual failure.
func New(cfg Config) (model.Provider, error) {
	if err := validateModelName(cfg); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case TypeOpenAI:
		p, err := NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case TypeAnthropic:
		p, err := NewAnthropicProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case TypeGoogle:
		p, err := NewGoogleProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case TypeXAI:
		p, err := NewXAIProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case TypeOpenRouter:
		p, err := NewOpenRouterProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case TypeOllama:
		p, err := NewOllamaProvider(cfg.BaseURL, cfg.Model)
		if err != nil {
			return nil, err
		}
		probeHealth(p, cfg)
		return p, nil
	case TypeLlamaCpp:
		p, err := NewLlamaCppProvider(cfg)
		if err != nil {
			return nil, err
		}
		probeHealth(p, cfg)
		return p, nil
	case TypeMock:
		return NewMockProvider(cfg.Model), nil
	default:
		return nil, &UnsupportedProviderError{Name: string(cfg.Type)}
	}
}

// MapProviderIDToType converts a config provider ID to a factory Type.
// Unknown IDs pass through as-is so the factory reports them.
func MapProviderIDToType(id string) Type {
	for _, t := range knownTypes {
		if id == string(t) {
			return t
		}
	}
	return Type(id)
}

// probeHealth pings a local-server backend and logs a warning on failure.
// Advisory only: the pipeline proceeds and the first chat call fails with
// the real error if the server stays down.
func probeHealth(p model.Provider, cfg Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s server not reachable for %s-thinking role: %v\n", cfg.Type, cfg.Role, err)
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] %s health probe failed (role=%s, url=%s): %v", cfg.Type, cfg.Role, cfg.BaseURL, err)
		}
	}
}
