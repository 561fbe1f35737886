package agents

import (
	"context"
	"fmt"

	"github.com/Stefan824/TradingAgents/model"
)

// MarketAnalyst produces the technical analysis report.
func MarketAnalyst(ctx context.Context, p model.Provider, state *model.AgentState) (string, error) {
	user := fmt.Sprintf("Analyze the market for %s as of %s. Produce the technical analysis report.",
		state.CompanyOfInterest, state.TradeDate)

	report, err := model.Complete(ctx, p, marketAnalystPrompt, user)
	if err != nil {
		return "", fmt.Errorf("market analyst: %w", err)
	}
	return report, nil
}

// SocialAnalyst produces the social sentiment report.
func SocialAnalyst(ctx context.Context, p model.Provider, state *model.AgentState) (string, error) {
	user := fmt.Sprintf("Analyze social sentiment for %s as of %s. Produce the sentiment report.",
		state.CompanyOfInterest, state.TradeDate)

	report, err := model.Complete(ctx, p, socialAnalystPrompt, user)
	if err != nil {
		return "", fmt.Errorf("social analyst: %w", err)
	}
	return report, nil
}

// NewsAnalyst produces the news and macro report.
func NewsAnalyst(ctx context.Context, p model.Provider, state *model.AgentState) (string, error) {
	user := fmt.Sprintf("Analyze recent news relevant to %s as of %s. Produce the news report.",
		state.CompanyOfInterest, state.TradeDate)

	report, err := model.Complete(ctx, p, newsAnalystPrompt, user)
	if err != nil {
		return "", fmt.Errorf("news analyst: %w", err)
	}
	return report, nil
}

// FundamentalsAnalyst produces the fundamentals report.
func FundamentalsAnalyst(ctx context.Context, p model.Provider, state *model.AgentState) (string, error) {
	user := fmt.Sprintf("Analyze the fundamentals of %s as of %s. Produce the fundamentals report.",
		state.CompanyOfInterest, state.TradeDate)

	report, err := model.Complete(ctx, p, fundamentalsAnalystPrompt, user)
	if err != nil {
		return "", fmt.Errorf("fundamentals analyst: %w", err)
	}
	return report, nil
}
