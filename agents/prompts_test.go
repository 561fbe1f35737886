package agents

import (
	"testing"

	"github.com/Stefan824/TradingAgents/provider"
)

// TestPromptsRouteToOwnRole verifies that each role's system prompt routes to
// that role's canned response on the offline backend. The identity phrases in
// the prompts are what the router keys on, so this catches accidental
// rewording.
func TestPromptsRouteToOwnRole(t *testing.T) {
	tests := []struct {
		role   string
		prompt string
		want   string
	}{
		{"market analyst", marketAnalystPrompt, provider.MockMarketReport},
		{"social analyst", socialAnalystPrompt, provider.MockSentimentReport},
		{"news analyst", newsAnalystPrompt, provider.MockNewsReport},
		{"fundamentals analyst", fundamentalsAnalystPrompt, provider.MockFundamentalsReport},
		{"bull researcher", bullResearcherPrompt, provider.MockBullArgument},
		{"bear researcher", bearResearcherPrompt, provider.MockBearArgument},
		{"research manager", researchManagerPrompt, provider.MockResearchManagerDecision},
		{"trader", traderPrompt, provider.MockTraderDecision},
		{"aggressive risk", aggressiveRiskPrompt, provider.MockAggressiveRisk},
		{"conservative risk", conservativeRiskPrompt, provider.MockConservativeRisk},
		{"neutral risk", neutralRiskPrompt, provider.MockNeutralRisk},
		{"risk judge", riskJudgePrompt, provider.MockRiskJudgeDecision},
		{"reflection", reflectionPrompt, provider.MockReflection},
		{"signal extraction", SignalExtractionPrompt, "BUY"},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := provider.Route(tt.prompt); got != tt.want {
				t.Errorf("Route(%s prompt) returned wrong response:\ngot:  %.80q\nwant: %.80q", tt.role, got, tt.want)
			}
		})
	}
}
