package provider

import (
	"context"
	"testing"

	"github.com/Stefan824/TradingAgents/model"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{
			name:   "signal extraction",
			prompt: "Your task is to extract the investment decision from the following text.",
			want:   "BUY",
		},
		{
			name:   "market analyst by role phrase",
			prompt: "You are a trading assistant tasked with ANALYZING FINANCIAL MARKETS.",
			want:   MockMarketReport,
		},
		{
			name:   "market analyst by indicator phrase",
			prompt: "Select the best technical indicator set for this stock.",
			want:   MockMarketReport,
		},
		{
			name:   "sentiment requires both keywords",
			prompt: "You are a social media and company specific news researcher.",
			want:   MockSentimentReport,
		},
		{
			name:   "social media alone falls through",
			prompt: "Summarize social media chatter.",
			want:   MockFallbackResponse,
		},
		{
			name:   "news analyst",
			prompt: "You are a news researcher covering world affairs for trading.",
			want:   MockNewsReport,
		},
		{
			name:   "fundamentals by information phrase",
			prompt: "Analyze fundamental information about the company.",
			want:   MockFundamentalsReport,
		},
		{
			name:   "fundamentals by documents phrase",
			prompt: "Review the company's financial documents.",
			want:   MockFundamentalsReport,
		},
		{
			name:   "bull researcher",
			prompt: "You are a Bull Analyst advocating for the stock.",
			want:   MockBullArgument,
		},
		{
			name:   "bear researcher",
			prompt: "You are a Bear Analyst arguing against the stock.",
			want:   MockBearArgument,
		},
		{
			name:   "research manager",
			prompt: "As the portfolio manager and debate facilitator, evaluate this debate.",
			want:   MockResearchManagerDecision,
		},
		{
			name:   "risk judge",
			prompt: "As the Risk Management Judge, weigh the three analysts.",
			want:   MockRiskJudgeDecision,
		},
		{
			name:   "trader",
			prompt: "You are a trading agent analyzing market data to make investment decisions.",
			want:   MockTraderDecision,
		},
		{
			name:   "aggressive risk analyst",
			prompt: "As the Aggressive Risk Analyst, champion the upside.",
			want:   MockAggressiveRisk,
		},
		{
			name:   "conservative risk analyst",
			prompt: "As the Conservative Risk Analyst, protect the portfolio.",
			want:   MockConservativeRisk,
		},
		{
			name:   "neutral risk analyst",
			prompt: "As the Neutral Risk Analyst, weigh both sides.",
			want:   MockNeutralRisk,
		},
		{
			name:   "reflection",
			prompt: "You are an expert financial analyst reviewing trading decisions.",
			want:   MockReflection,
		},
		{
			name:   "fallback on unmatched input",
			prompt: "Tell me a story about a lighthouse.",
			want:   MockFallbackResponse,
		},
		{
			name:   "empty prompt falls back",
			prompt: "",
			want:   MockFallbackResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Route(tt.prompt)
			if got != tt.want {
				t.Errorf("Route(%q):\ngot  %q\nwant %q", tt.prompt, got, tt.want)
			}
		})
	}
}

// A bear prompt quoting the bull's role name routes to the bull response,
// because the bull rule is declared first. This ordering is documented
// behavior that downstream fixtures depend on; the test asserts the
// documented winner, not a corrected one.
func TestRouteBullShadowsBear(t *testing.T) {
	prompt := "You are a Bear Analyst. Debate history: the Bull Analyst argued the upside is compelling."
	if got := Route(prompt); got != MockBullArgument {
		t.Errorf("expected bull response to shadow bear, got %q", got)
	}

	// The reverse direction is unaffected: a bull prompt quoting the bear
	// still routes to the bull response.
	prompt = "You are a Bull Analyst. Debate history: the Bear Analyst warned about valuation."
	if got := Route(prompt); got != MockBullArgument {
		t.Errorf("expected bull response, got %q", got)
	}
}

// Signal-extraction prompts embed the full decision text under review; the
// extraction rule must win over the rules matching that embedded text.
func TestRouteExtractionBeatsEmbeddedDecision(t *testing.T) {
	prompt := "extract the investment decision from this text: " + MockRiskJudgeDecision
	if got := Route(prompt); got != "BUY" {
		t.Errorf("expected BUY, got %q", got)
	}
}

func TestMockProviderChat(t *testing.T) {
	p := NewMockProvider("")

	messages := []model.Message{
		model.SystemMessage("You are a trading assistant tasked with analyzing financial markets."),
		model.UserMessage("Analyze NVDA."),
	}

	var got string
	err := p.Chat(context.Background(), messages, func(chunk string, toolCalls []model.ToolCall) error {
		got += chunk
		if toolCalls != nil {
			t.Error("mock provider should never emit tool calls")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != MockMarketReport {
		t.Errorf("got %q, want market report", got)
	}
}

func TestMockProviderToolsIgnored(t *testing.T) {
	p := NewMockProvider("mock-model")

	tools := []model.Tool{{Name: "get_stock_price", Description: "test tool"}}
	var got string
	err := p.ChatWithTools(context.Background(), []model.Message{model.UserMessage("anything")}, tools, func(chunk string, toolCalls []model.ToolCall) error {
		got += chunk
		if toolCalls != nil {
			t.Error("tools must be ignored, got tool calls")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != MockFallbackResponse {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestMockProviderModelAccessors(t *testing.T) {
	p := NewMockProvider("")
	if p.GetModel() != "mock-model" {
		t.Errorf("default model = %q, want mock-model", p.GetModel())
	}
	p.SetModel("other")
	if p.GetModel() != "other" || p.GetDisplayName() != "other" {
		t.Errorf("SetModel not reflected: %q / %q", p.GetModel(), p.GetDisplayName())
	}

	if err := p.Ping(context.Background()); err != nil {
		t.Errorf("mock ping should never fail: %v", err)
	}

	models, err := p.ListModels(context.Background())
	if err != nil || len(models) != 1 {
		t.Fatalf("ListModels = %v, %v", models, err)
	}
	if models[0].Provider != "mock" {
		t.Errorf("model provider = %q, want mock", models[0].Provider)
	}
}
