package provider

import (
	"fmt"
	"strings"
)

// remoteModelPrefixes lists known model-family prefixes per remote provider.
// Remote APIs reject unknown models at call time anyway; this check exists
// to catch obvious cross-provider mixups (an Ollama tag configured against
// openai, say) before a run burns API calls.
var remoteModelPrefixes = map[Type][]string{
	TypeOpenAI:    {"gpt-", "o1", "o3", "o4", "chatgpt-"},
	TypeAnthropic: {"claude-"},
	TypeGoogle:    {"gemini-", "gemma-"},
	TypeXAI:       {"grok-"},
}

// validateModelName checks the configured model for the provider type.
//
// Local-server and mock providers are permissive: any non-empty name is
// accepted (empty falls back to each constructor's default). Remote
// providers are checked against the prefix allowlist.
func validateModelName(cfg Config) error {
	prefixes, ok := remoteModelPrefixes[cfg.Type]
	if !ok {
		// ollama, openrouter, llamacpp, mock: any name accepted
		return nil
	}

	if cfg.Model == "" {
		// Constructors apply their own defaults.
		return nil
	}

	name := strings.ToLower(cfg.Model)
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return nil
		}
	}

	return fmt.Errorf("model %q does not look like a %s model (expected prefix: %s)",
		cfg.Model, cfg.Type, strings.Join(prefixes, ", "))
}
