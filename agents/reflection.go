package agents

import (
	"context"
	"fmt"

	"github.com/Stefan824/TradingAgents/model"
)

// Reflect reviews a completed decision against its realized outcome and
// produces a lesson for the reflection memory. returnsPct is the position's
// subsequent return in percent.
func Reflect(ctx context.Context, p model.Provider, state *model.AgentState, returnsPct float64) (string, error) {
	user := fmt.Sprintf("Decision under review for %s on %s:\n%s\n\nObserved return since the decision: %.2f%%\n\nFull analysis context:\n%s",
		state.CompanyOfInterest, state.TradeDate, state.FinalTradeDecision, returnsPct, reportContext(state))

	lesson, err := model.Complete(ctx, p, reflectionPrompt, user)
	if err != nil {
		return "", fmt.Errorf("reflection: %w", err)
	}
	return lesson, nil
}
