package agents

import (
	"context"
	"fmt"

	"github.com/Stefan824/TradingAgents/model"
)

func riskDebateUser(state *model.AgentState) string {
	return fmt.Sprintf("%sTrader's decision:\n%s\n\nRisk discussion so far:\n%s\n\nDeliver your assessment for %s.",
		reportContext(state), state.TraderInvestmentPlan, state.RiskDebate.History, state.CompanyOfInterest)
}

// AggressiveRiskAnalyst argues for maximizing upside.
func AggressiveRiskAnalyst(ctx context.Context, p model.Provider, state *model.AgentState) (string, error) {
	out, err := model.Complete(ctx, p, aggressiveRiskPrompt, riskDebateUser(state))
	if err != nil {
		return "", fmt.Errorf("aggressive risk analyst: %w", err)
	}
	return out, nil
}

// ConservativeRiskAnalyst argues for capital preservation.
func ConservativeRiskAnalyst(ctx context.Context, p model.Provider, state *model.AgentState) (string, error) {
	out, err := model.Complete(ctx, p, conservativeRiskPrompt, riskDebateUser(state))
	if err != nil {
		return "", fmt.Errorf("conservative risk analyst: %w", err)
	}
	return out, nil
}

// NeutralRiskAnalyst weighs both extremes.
func NeutralRiskAnalyst(ctx context.Context, p model.Provider, state *model.AgentState) (string, error) {
	out, err := model.Complete(ctx, p, neutralRiskPrompt, riskDebateUser(state))
	if err != nil {
		return "", fmt.Errorf("neutral risk analyst: %w", err)
	}
	return out, nil
}

// RiskJudge adjudicates the risk discussion and produces the final trade
// decision. Runs on the deep thinker.
func RiskJudge(ctx context.Context, p model.Provider, state *model.AgentState, pastLessons string) (string, error) {
	user := fmt.Sprintf("Trader's decision:\n%s\n\nRisk discussion:\n%s\n\nPast reflections on similar situations:\n%s\n\nDeliver the final risk-adjusted decision for %s.",
		state.TraderInvestmentPlan, state.RiskDebate.History, pastLessons, state.CompanyOfInterest)

	decision, err := model.Complete(ctx, p, riskJudgePrompt, user)
	if err != nil {
		return "", fmt.Errorf("risk judge: %w", err)
	}
	return decision, nil
}
