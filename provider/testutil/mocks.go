package testutil

import (
	"context"

	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/ollama"
)

// StubProvider implements model.Provider for testing with configurable
// behavior per method. Distinct from the shipping mock provider: the stub
// echoes whatever the test wires in, with no routing logic.
type StubProvider struct {
	// Configurable responses
	ChatFunc          func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error
	ChatWithToolsFunc func(ctx context.Context, messages []model.Message, tools []model.Tool, callback model.StreamCallback) error
	ListModelsFunc    func(ctx context.Context) ([]ollama.ModelInfo, error)
	PingFunc          func(ctx context.Context) error

	// State
	currentModel string
}

// NewStubProvider creates a stub provider with default implementations.
func NewStubProvider(modelName string) *StubProvider {
	stub := &StubProvider{
		currentModel: modelName,
	}
	stub.ChatFunc = stub.defaultChat
	stub.ChatWithToolsFunc = stub.defaultChatWithTools
	stub.ListModelsFunc = stub.defaultListModels
	stub.PingFunc = stub.defaultPing
	return stub
}

func (s *StubProvider) defaultChat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	if len(messages) > 0 && callback != nil {
		return callback("Stub response", nil)
	}
	return nil
}

func (s *StubProvider) defaultChatWithTools(ctx context.Context, messages []model.Message, tools []model.Tool, callback model.StreamCallback) error {
	if callback != nil {
		return callback("Stub response with tools", nil)
	}
	return nil
}

func (s *StubProvider) defaultListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	return []ollama.ModelInfo{
		{Name: "stub-model-1", Size: 1000},
		{Name: "stub-model-2", Size: 2000},
	}, nil
}

func (s *StubProvider) defaultPing(ctx context.Context) error {
	return nil
}

func (s *StubProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	return s.ChatFunc(ctx, messages, callback)
}

func (s *StubProvider) ChatWithTools(ctx context.Context, messages []model.Message, tools []model.Tool, callback model.StreamCallback) error {
	return s.ChatWithToolsFunc(ctx, messages, tools, callback)
}

func (s *StubProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	return s.ListModelsFunc(ctx)
}

func (s *StubProvider) GetModel() string {
	return s.currentModel
}

func (s *StubProvider) GetDisplayName() string {
	// No prefix stripping for the stub
	return s.currentModel
}

func (s *StubProvider) SetModel(modelName string) {
	s.currentModel = modelName
}

func (s *StubProvider) Ping(ctx context.Context) error {
	return s.PingFunc(ctx)
}

// FixedResponseProvider returns a stub whose every chat call streams the
// given text as one chunk.
func FixedResponseProvider(text string) *StubProvider {
	stub := NewStubProvider("fixed")
	stub.ChatFunc = func(ctx context.Context, _ []model.Message, callback model.StreamCallback) error {
		if callback != nil {
			return callback(text, nil)
		}
		return nil
	}
	stub.ChatWithToolsFunc = func(ctx context.Context, _ []model.Message, _ []model.Tool, callback model.StreamCallback) error {
		if callback != nil {
			return callback(text, nil)
		}
		return nil
	}
	return stub
}
