package local

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Stefan824/TradingAgents/ollama"
)

// CheckOllamaHealth checks if the Ollama server is running and responsive.
// Returns (healthy, message); the message lists available models on success
// and remediation on failure.
func CheckOllamaHealth(ctx context.Context, baseURL string) (bool, string) {
	client, err := ollama.NewClient(baseURL, "")
	if err != nil {
		return false, fmt.Sprintf("Ollama health check failed: %v", err)
	}

	models, err := client.ListModels(ctx)
	if err != nil {
		return false, "Ollama server not reachable. Start with: ollama serve"
	}

	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	listing := strings.Join(names, ", ")
	if listing == "" {
		listing = "none"
	}
	return true, fmt.Sprintf("Ollama running with %d model(s): %s", len(models), listing)
}

// CheckOllamaModel reports whether a model is available on the server.
// Matching is by substring, so "qwen3:8b" matches "qwen3:8b-q4_K_M".
func CheckOllamaModel(ctx context.Context, baseURL, modelName string) bool {
	client, err := ollama.NewClient(baseURL, "")
	if err != nil {
		return false
	}

	models, err := client.ListModels(ctx)
	if err != nil {
		return false
	}

	for _, m := range models {
		if strings.Contains(m.Name, modelName) {
			return true
		}
	}
	return false
}

// PullModel downloads a model via the Ollama API, forwarding progress lines.
func PullModel(ctx context.Context, baseURL, modelName string, progress func(status string)) error {
	client, err := ollama.NewClient(baseURL, "")
	if err != nil {
		return err
	}
	return client.Pull(ctx, modelName, progress)
}

// SuggestModel fuzzy-matches a missing model name against the models
// installed on the server and returns the closest candidates, best first.
// Used to build actionable "did you mean" errors when a configured model
// is not present.
func SuggestModel(ctx context.Context, baseURL, modelName string, limit int) []string {
	client, err := ollama.NewClient(baseURL, "")
	if err != nil {
		return nil
	}

	models, err := client.ListModels(ctx)
	if err != nil || len(models) == 0 {
		return nil
	}

	targets := make([]string, len(models))
	for i, m := range models {
		targets[i] = m.Name
	}

	matches := fuzzy.Find(modelName, targets)
	if limit <= 0 || limit > len(matches) {
		limit = len(matches)
	}

	suggestions := make([]string, 0, limit)
	for _, match := range matches[:limit] {
		suggestions = append(suggestions, targets[match.Index])
	}
	return suggestions
}
