package provider

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Stefan824/TradingAgents/model"
)

// writeTempGGUF creates a dummy weights file for llamacpp construction tests.
func writeTempGGUF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.gguf")
	if err := os.WriteFile(path, []byte("GGUF"), 0600); err != nil {
		t.Fatalf("failed to write temp gguf: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	ggufPath := writeTempGGUF(t)

	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "ollama provider with defaults",
			config: Config{
				Type: TypeOllama,
			},
			expectError: false,
		},
		{
			name: "ollama provider with custom config",
			config: Config{
				Type:    TypeOllama,
				BaseURL: "http://localhost:11434",
				Model:   "qwen3:8b",
			},
			expectError: false,
		},
		{
			name: "openai provider",
			config: Config{
				Type:    TypeOpenAI,
				BaseURL: "https://api.openai.com/v1",
				Model:   "gpt-4o-mini",
				APIKey:  "test-key",
			},
			expectError: false,
		},
		{
			name: "anthropic provider",
			config: Config{
				Type:    TypeAnthropic,
				BaseURL: "https://api.anthropic.com",
				Model:   "claude-sonnet-4-5-20250929",
				APIKey:  "test-key",
			},
			expectError: false,
		},
		{
			name: "google provider",
			config: Config{
				Type:   TypeGoogle,
				Model:  "gemini-2.0-flash",
				APIKey: "test-key",
			},
			expectError: false,
		},
		{
			name: "xai provider",
			config: Config{
				Type:   TypeXAI,
				Model:  "grok-3-mini",
				APIKey: "test-key",
			},
			expectError: false,
		},
		{
			name: "openrouter provider",
			config: Config{
				Type:   TypeOpenRouter,
				Model:  "meta-llama/llama-3.2-90b-instruct",
				APIKey: "test-key",
			},
			expectError: false,
		},
		{
			name: "llamacpp provider with existing weights",
			config: Config{
				Type:      TypeLlamaCpp,
				Role:      model.RoleDeep,
				ModelPath: ggufPath,
			},
			expectError: false,
		},
		{
			name: "mock provider",
			config: Config{
				Type: TypeMock,
			},
			expectError: false,
		},
		{
			name: "openai provider missing key",
			config: Config{
				Type:  TypeOpenAI,
				Model: "gpt-4o-mini",
			},
			expectError: true,
		},
		{
			name: "openai provider with ollama tag",
			config: Config{
				Type:   TypeOpenAI,
				Model:  "qwen3:8b",
				APIKey: "test-key",
			},
			expectError: true,
		},
		{
			name: "unknown provider type",
			config: Config{
				Type:  Type("unknown"),
				Model: "test",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.config)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tt.expectError && p != nil {
				t.Error("expected nil provider, got non-nil")
			}
			if !tt.expectError && p == nil {
				t.Error("expected non-nil provider, got nil")
			}
		})
	}
}

func TestNewUnsupportedProviderError(t *testing.T) {
	_, err := New(Config{Type: Type("bogus")})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}

	var unsupported *UnsupportedProviderError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedProviderError, got %T: %v", err, err)
	}
	if unsupported.Name != "bogus" {
		t.Errorf("error names %q, want %q", unsupported.Name, "bogus")
	}
	// The error message should list the recognized providers
	for _, want := range []string{"openai", "anthropic", "ollama", "llamacpp", "mock"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error message %q missing supported provider %q", err.Error(), want)
		}
	}
}

func TestNewModelFileNotFound(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantInText string
	}{
		{
			name: "missing file names deep role",
			config: Config{
				Type:      TypeLlamaCpp,
				Role:      model.RoleDeep,
				ModelPath: "/nonexistent/model.gguf",
			},
			wantInText: "deep",
		},
		{
			name: "missing file names quick role",
			config: Config{
				Type:      TypeLlamaCpp,
				Role:      model.RoleQuick,
				ModelPath: "/nonexistent/model.gguf",
			},
			wantInText: "quick",
		},
		{
			name: "empty path names config key",
			config: Config{
				Type: TypeLlamaCpp,
				Role: model.RoleQuick,
			},
			wantInText: "local_model_path_quick",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var notFound *ModelFileNotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("expected *ModelFileNotFoundError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.wantInText) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantInText)
			}
		})
	}
}

func TestFactoryReturnsConcreteTypes(t *testing.T) {
	p, err := New(Config{Type: TypeOllama, BaseURL: "http://localhost:11434", Model: "qwen3:8b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*OllamaProvider); !ok {
		t.Errorf("expected *OllamaProvider, got %T", p)
	}

	p, err = New(Config{Type: TypeMock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*MockProvider); !ok {
		t.Errorf("expected *MockProvider, got %T", p)
	}
}

func TestMapProviderIDToType(t *testing.T) {
	for _, known := range knownTypes {
		if got := MapProviderIDToType(string(known)); got != known {
			t.Errorf("MapProviderIDToType(%q) = %q, want %q", known, got, known)
		}
	}

	if got := MapProviderIDToType("something-else"); got != Type("something-else") {
		t.Errorf("unknown ID should pass through, got %q", got)
	}
}
