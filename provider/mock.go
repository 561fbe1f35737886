package provider

import (
	"context"
	"strings"

	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/ollama"
)

// RoutingRule maps a set of required keywords to a canned response. A rule
// matches when ALL of its keywords appear in the lowercased prompt text.
type RoutingRule struct {
	Keywords []string
	Response string
}

// MockRoutingRules is the ordered rule table for the mock provider. Rules
// are evaluated top to bottom, first match wins, so declaration order is
// load-bearing.
//
// The signal-extraction rule sits first: extraction prompts embed the full
// decision text being extracted, which would otherwise match an earlier
// agent rule. The bull-analyst rule precedes the bear-analyst rule, so a
// bear prompt that quotes "Bull Analyst" arguments routes to the bull
// response. That misrouting matches the behavior the pipeline was tuned
// against; reordering would change debate transcripts.
var MockRoutingRules = []RoutingRule{
	{Keywords: []string{"extract the investment decision"}, Response: "BUY"},

	{Keywords: []string{"analyzing financial markets"}, Response: MockMarketReport},
	{Keywords: []string{"technical indicator"}, Response: MockMarketReport},
	{Keywords: []string{"social media", "company specific news"}, Response: MockSentimentReport},
	{Keywords: []string{"news", "researcher", "world affairs"}, Response: MockNewsReport},
	{Keywords: []string{"fundamental information"}, Response: MockFundamentalsReport},
	{Keywords: []string{"financial documents"}, Response: MockFundamentalsReport},

	{Keywords: []string{"bull analyst"}, Response: MockBullArgument},
	{Keywords: []string{"bear analyst"}, Response: MockBearArgument},

	{Keywords: []string{"portfolio manager and debate facilitator"}, Response: MockResearchManagerDecision},
	{Keywords: []string{"risk management judge"}, Response: MockRiskJudgeDecision},

	{Keywords: []string{"trading agent", "investment decision"}, Response: MockTraderDecision},

	{Keywords: []string{"aggressive risk analyst"}, Response: MockAggressiveRisk},
	{Keywords: []string{"conservative risk analyst"}, Response: MockConservativeRisk},
	{Keywords: []string{"neutral risk analyst"}, Response: MockNeutralRisk},

	{Keywords: []string{"expert financial analyst", "reviewing trading"}, Response: MockReflection},
}

// Route selects the canned response for a prompt. Matching is
// case-insensitive; unmatched prompts get MockFallbackResponse. Never errors.
func Route(prompt string) string {
	t := strings.ToLower(prompt)

	for _, rule := range MockRoutingRules {
		matched := true
		for _, kw := range rule.Keywords {
			if !strings.Contains(t, kw) {
				matched = false
				break
			}
		}
		if matched {
			return rule.Response
		}
	}

	return MockFallbackResponse
}

// MockProvider implements model.Provider with canned responses routed by
// prompt content. It lets the full pipeline run offline: every agent role
// gets a realistic report shape, and extraction prompts get a bare signal.
//
// ChatWithTools always responds with text and never emits tool calls, which
// makes analyst agents skip tool execution and proceed straight to their
// report.
type MockProvider struct {
	model string
}

// NewMockProvider creates a mock provider. The model name is cosmetic.
func NewMockProvider(modelName string) *MockProvider {
	if modelName == "" {
		modelName = "mock-model"
	}
	return &MockProvider{model: modelName}
}

// Chat implements model.Provider.Chat.
func (p *MockProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	return p.ChatWithTools(ctx, messages, nil, callback)
}

// ChatWithTools implements model.Provider.ChatWithTools. Tools are accepted
// and ignored; the response is routed from the concatenated message text and
// delivered as a single chunk.
func (p *MockProvider) ChatWithTools(ctx context.Context, messages []model.Message, tools []model.Tool, callback model.StreamCallback) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var sb strings.Builder
	for i, msg := range messages {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(msg.Content)
	}

	response := Route(sb.String())
	if callback != nil {
		return callback(response, nil)
	}
	return nil
}

// ListModels implements model.Provider.ListModels.
func (p *MockProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	return []ollama.ModelInfo{
		{
			Name:         p.model,
			InternalName: p.model,
			Size:         0,
			Provider:     "mock",
		},
	}, nil
}

// GetModel implements model.Provider.GetModel.
func (p *MockProvider) GetModel() string {
	return p.model
}

// GetDisplayName implements model.Provider.GetDisplayName.
func (p *MockProvider) GetDisplayName() string {
	return p.model
}

// SetModel implements model.Provider.SetModel.
func (p *MockProvider) SetModel(modelName string) {
	p.model = modelName
}

// Ping implements model.Provider.Ping. The mock is always reachable.
func (p *MockProvider) Ping(ctx context.Context) error {
	return nil
}

var _ model.Provider = (*MockProvider)(nil)
