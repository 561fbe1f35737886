package provider

import (
	"fmt"
	"os"

	"github.com/Stefan824/TradingAgents/config"
	"github.com/Stefan824/TradingAgents/local"
	"github.com/Stefan824/TradingAgents/model"
)

// LlamaCppProvider implements model.Provider for local GGUF weights served
// by a llama.cpp server (llama-server) over its OpenAI-compatible API.
//
// The GGUF file is validated at construction so a misconfigured path fails
// before the pipeline starts, with an error naming the thinking role. The
// n_gpu_layers / n_ctx / n_batch options are recorded for sizing helpers
// and the server launch command; the server applies them at load time.
type LlamaCppProvider struct {
	chatClient

	modelPath    string
	numGPULayers int
	numCtx       int
	numBatch     int
}

// NewLlamaCppProvider creates a llama.cpp provider from the full factory
// config. Returns *ModelFileNotFoundError if cfg.ModelPath is empty or does
// not name an existing file.
func NewLlamaCppProvider(cfg Config) (*LlamaCppProvider, error) {
	if cfg.ModelPath == "" {
		return nil, &ModelFileNotFoundError{Role: cfg.Role}
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, &ModelFileNotFoundError{Role: cfg.Role, Path: cfg.ModelPath}
	}

	if ok, msg := local.ValidateGGUF(cfg.ModelPath); !ok {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
	} else if config.DebugLog != nil {
		if gb, haveSize := local.EstimateMemoryGB(cfg.ModelPath); haveSize {
			config.DebugLog.Printf("[LlamaCpp] %s weights: %s (~%.1f GB RAM at runtime)", cfg.Role, cfg.ModelPath, gb)
		}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8080/v1"
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "local"
	}

	return &LlamaCppProvider{
		// llama-server ignores authentication by default; no API key.
		chatClient:   newChatClient("llamacpp", baseURL, "", modelName),
		modelPath:    cfg.ModelPath,
		numGPULayers: cfg.NumGPULayers,
		numCtx:       cfg.NumCtx,
		numBatch:     cfg.NumBatch,
	}, nil
}

// ModelPath returns the validated GGUF weights path.
func (p *LlamaCppProvider) ModelPath() string {
	return p.modelPath
}

// ServerArgs returns the llama-server flags matching this provider's
// configuration, for operators launching the server by hand.
func (p *LlamaCppProvider) ServerArgs() []string {
	return []string{
		"--model", p.modelPath,
		"--n-gpu-layers", fmt.Sprintf("%d", p.numGPULayers),
		"--ctx-size", fmt.Sprintf("%d", p.numCtx),
		"--batch-size", fmt.Sprintf("%d", p.numBatch),
	}
}

var _ model.Provider = (*LlamaCppProvider)(nil)
