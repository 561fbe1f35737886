package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Stefan824/TradingAgents/agents"
	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/storage"
)

// Reflect reviews a completed run against its realized return, stores the
// lesson in the reflection memory, and returns it. Requires a decision
// storage to be configured.
func (g *TradingGraph) Reflect(ctx context.Context, state *model.AgentState, signal model.Signal, returnsPct float64) (string, error) {
	if g.decisions == nil {
		return "", fmt.Errorf("reflection requires decision storage")
	}

	lesson, err := agents.Reflect(ctx, g.deep, state, returnsPct)
	if err != nil {
		return "", err
	}

	err = g.decisions.SaveReflection(storage.Reflection{
		ID:         uuid.New().String(),
		Ticker:     state.CompanyOfInterest,
		TradeDate:  state.TradeDate,
		Signal:     string(signal),
		ReturnsPct: returnsPct,
		Lesson:     lesson,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to save reflection: %w", err)
	}

	return lesson, nil
}
