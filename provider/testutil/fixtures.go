package testutil

import (
	"github.com/Stefan824/TradingAgents/model"
)

// TestMessages returns a sample agent exchange for testing.
func TestMessages() []model.Message {
	return []model.Message{
		{
			Role:    "system",
			Content: "You are a trading assistant analyzing financial markets.",
		},
		{
			Role:    "user",
			Content: "Analyze NVDA for 2026-08-28.",
		},
		{
			Role:    "assistant",
			Content: "NVDA shows a moderate uptrend with expanding volume.",
		},
	}
}

// SingleUserMessage returns a single user message for simple tests.
func SingleUserMessage(content string) []model.Message {
	return []model.Message{
		{
			Role:    "user",
			Content: content,
		},
	}
}

// TestTools returns sample tool definitions for testing.
func TestTools() []model.Tool {
	return []model.Tool{
		{
			Name:        "get_stock_price",
			Description: "Get the latest closing price for a ticker",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": map[string]any{
						"type":        "string",
						"description": "The ticker symbol, e.g. NVDA",
					},
				},
				"required": []string{"ticker"},
			},
		},
		{
			Name:        "get_indicator",
			Description: "Compute a technical indicator over recent prices",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"indicator": map[string]any{
						"type":        "string",
						"description": "Indicator name, e.g. rsi, macd",
					},
				},
				"required": []string{"indicator"},
			},
		},
	}
}

// EmptyMessages returns an empty message slice for edge case testing.
func EmptyMessages() []model.Message {
	return []model.Message{}
}
