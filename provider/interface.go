// Package provider implements LLM backends for the trading pipeline behind
// a common interface.
//
// The pipeline supports remote APIs (OpenAI, Anthropic, Google, xAI,
// OpenRouter), a local Ollama server, a llama.cpp server over local GGUF
// weights, and a deterministic mock. All variants implement model.Provider,
// so the graph and agent layers stay backend-agnostic.
//
// # Architecture
//
//   - model.Provider defines the contract (in the model package, to avoid
//     import cycles)
//   - provider.New() is the factory dispatching on Config.Type
//   - one file per backend implements the interface
//   - provider/testutil holds a scriptable mock for tests
//
// Each pipeline run constructs exactly two providers: a deep thinker for the
// judge/manager agents and a quick thinker for everything else. Providers
// hold no per-call state; they are safe for read-only concurrent use only.
package provider

import "github.com/Stefan824/TradingAgents/model"

// Type identifies the provider implementation.
type Type string

const (
	TypeOpenAI     Type = "openai"
	TypeAnthropic  Type = "anthropic"
	TypeGoogle     Type = "google"
	TypeXAI        Type = "xai"
	TypeOllama     Type = "ollama"
	TypeOpenRouter Type = "openrouter"
	TypeLlamaCpp   Type = "llamacpp"
	TypeMock       Type = "mock"
)

// knownTypes is the closed set of recognized providers, in the order they
// are reported in errors and help text.
var knownTypes = []Type{
	TypeOpenAI, TypeAnthropic, TypeGoogle, TypeXAI,
	TypeOllama, TypeOpenRouter, TypeLlamaCpp, TypeMock,
}

// Config holds everything needed to construct one provider for one
// thinking role. Built once at pipeline configuration time; immutable
// thereafter.
type Config struct {
	Type    Type
	BaseURL string
	Model   string
	APIKey  string // remote providers only

	// Role names the thinking role this provider serves (deep or quick),
	// so construction-time errors can say which role is misconfigured.
	Role model.ThinkingRole

	// Local-weights options (llamacpp only).
	ModelPath    string
	NumGPULayers int
	NumCtx       int
	NumBatch     int
}
