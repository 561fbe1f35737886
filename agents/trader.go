package agents

import (
	"context"
	"fmt"

	"github.com/Stefan824/TradingAgents/model"
)

// Trader turns the research manager's plan into a concrete trade proposal.
func Trader(ctx context.Context, p model.Provider, state *model.AgentState, pastLessons string) (string, error) {
	user := fmt.Sprintf("%sProposed investment plan:\n%s\n\nPast reflections on similar situations:\n%s\n\nProduce your trade decision for %s.",
		reportContext(state), state.InvestmentPlan, pastLessons, state.CompanyOfInterest)

	decision, err := model.Complete(ctx, p, traderPrompt, user)
	if err != nil {
		return "", fmt.Errorf("trader: %w", err)
	}
	return decision, nil
}
