package provider

import (
	"testing"

	"github.com/ollama/ollama/api"

	"github.com/Stefan824/TradingAgents/model"
)

func TestConvertToOllamaMessages(t *testing.T) {
	input := []model.Message{
		{Role: "system", Content: "You are a trading assistant."},
		{Role: "user", Content: "Analyze NVDA."},
		{Role: "assistant", Content: "NVDA shows an uptrend."},
	}

	result := ConvertToOllamaMessages(input)

	if len(result) != len(input) {
		t.Fatalf("length mismatch: got %d, want %d", len(result), len(input))
	}
	for i, msg := range result {
		if msg.Role != input[i].Role || msg.Content != input[i].Content {
			t.Errorf("message %d: got {%q, %q}, want {%q, %q}",
				i, msg.Role, msg.Content, input[i].Role, input[i].Content)
		}
	}
}

func TestConvertToAnthropicMessagesExtractsSystem(t *testing.T) {
	input := []model.Message{
		{Role: "system", Content: "You are a Bull Analyst."},
		{Role: "user", Content: "Make the case."},
		{Role: "assistant", Content: "The case is strong."},
	}

	msgs, system := convertToAnthropicMessages(input)

	// System prompts move to the separate system parameter
	if len(system) != 1 {
		t.Fatalf("expected 1 system block, got %d", len(system))
	}
	if system[0].Text != "You are a Bull Analyst." {
		t.Errorf("system block = %q", system[0].Text)
	}
	if len(msgs) != 2 {
		t.Errorf("expected 2 conversation messages, got %d", len(msgs))
	}
}

func TestConvertToProviderToolCalls(t *testing.T) {
	input := []api.ToolCall{
		{
			Function: api.ToolCallFunction{
				Name:      "get_stock_price",
				Arguments: map[string]any{"ticker": "NVDA"},
			},
		},
	}

	result := ConvertToProviderToolCalls(input)

	if len(result) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(result))
	}
	if result[0].Name != "get_stock_price" {
		t.Errorf("name = %q", result[0].Name)
	}
	if result[0].Arguments["ticker"] != "NVDA" {
		t.Errorf("arguments = %v", result[0].Arguments)
	}

	if got := ConvertToProviderToolCalls(nil); got != nil {
		t.Errorf("nil input should convert to nil, got %v", got)
	}
}

func TestParseToolArguments(t *testing.T) {
	tests := []struct {
		name string
		json string
		want map[string]any
	}{
		{
			name: "valid arguments",
			json: `{"ticker": "NVDA", "days": 30}`,
			want: map[string]any{"ticker": "NVDA", "days": float64(30)},
		},
		{
			name: "invalid json yields empty map",
			json: `{not json`,
			want: map[string]any{},
		},
		{
			name: "empty string yields empty map",
			json: "",
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseToolArguments(tt.json)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("key %q: got %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestConvertToolsToOllama(t *testing.T) {
	tools := []model.Tool{
		{
			Name:        "get_indicator",
			Description: "Compute a technical indicator",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"indicator": map[string]any{"type": "string"},
				},
				"required": []string{"indicator"},
			},
		},
	}

	converted := convertToolsToOllama(tools)

	if len(converted) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(converted))
	}
	if converted[0].Type != "function" {
		t.Errorf("type = %q, want function", converted[0].Type)
	}
	if converted[0].Function.Name != "get_indicator" {
		t.Errorf("name = %q", converted[0].Function.Name)
	}
}
