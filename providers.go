package main

import (
	"fmt"

	"github.com/Stefan824/TradingAgents/config"
	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/provider"
)

// providerConfig assembles the factory config for one thinking role from
// the resolved runtime configuration.
func providerConfig(cfg *config.Config, role model.ThinkingRole) provider.Config {
	pc := provider.Config{
		Type:    provider.MapProviderIDToType(cfg.LLMProvider),
		BaseURL: cfg.BackendURL,
		APIKey:  cfg.CredentialStore.Get(cfg.LLMProvider),
		Role:    role,

		NumGPULayers: cfg.LocalNumGPULayers,
		NumCtx:       cfg.LocalNumCtx,
		NumBatch:     cfg.LocalNumBatch,
	}

	switch role {
	case model.RoleDeep:
		pc.Model = cfg.DeepThinkLLM
		pc.ModelPath = cfg.LocalModelPathDeep
	default:
		pc.Model = cfg.QuickThinkLLM
		pc.ModelPath = cfg.LocalModelPathQuick
	}

	// The Ollama host setting wins over backend_url for the ollama provider
	if pc.Type == provider.TypeOllama && cfg.OllamaHost != "" {
		pc.BaseURL = cfg.OllamaHost
	}

	return pc
}

// buildProviders constructs the deep and quick thinkers from configuration.
func buildProviders(cfg *config.Config) (deep, quick model.Provider, err error) {
	deep, err = provider.New(providerConfig(cfg, model.RoleDeep))
	if err != nil {
		return nil, nil, fmt.Errorf("deep thinker: %w", err)
	}

	quick, err = provider.New(providerConfig(cfg, model.RoleQuick))
	if err != nil {
		return nil, nil, fmt.Errorf("quick thinker: %w", err)
	}

	return deep, quick, nil
}
