// Package graph sequences the pipeline agents over a shared run state:
// analysts, the investment debate, the trader, the risk debate, and final
// signal extraction.
package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/Stefan824/TradingAgents/agents"
	"github.com/Stefan824/TradingAgents/config"
	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/storage"
)

// TradingGraph runs the full decision pipeline for one (ticker, date) pair.
// Stages alternate between the quick thinker (analysts, researchers, trader,
// extraction) and the deep thinker (research manager, risk judge). Stages
// run sequentially; the state is never shared across goroutines.
type TradingGraph struct {
	quick model.Provider
	deep  model.Provider

	maxDebateRounds int
	maxRiskRounds   int

	// Optional reflection memory. Nil disables past-lesson prompting.
	decisions *storage.DecisionStorage

	// Progress receives a line per completed stage. Nil disables progress
	// reporting.
	Progress func(stage string)
}

// New creates a trading graph from the two provider roles and the resolved
// configuration. Round counts below 1 are clamped to 1.
func New(quick, deep model.Provider, cfg *config.Config, decisions *storage.DecisionStorage) *TradingGraph {
	debateRounds := cfg.MaxDebateRounds
	if debateRounds < 1 {
		debateRounds = 1
	}
	riskRounds := cfg.MaxRiskRounds
	if riskRounds < 1 {
		riskRounds = 1
	}

	return &TradingGraph{
		quick:           quick,
		deep:            deep,
		maxDebateRounds: debateRounds,
		maxRiskRounds:   riskRounds,
		decisions:       decisions,
	}
}

func (g *TradingGraph) progress(stage string) {
	if g.Progress != nil {
		g.Progress(stage)
	}
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Graph] %s", stage)
	}
}

// Propagate runs every pipeline stage for the given ticker and trade date
// and returns the accumulated state plus the extracted signal. The state is
// returned even on mid-pipeline failure so partial results can be inspected.
func (g *TradingGraph) Propagate(ctx context.Context, ticker, tradeDate string) (*model.AgentState, model.Signal, error) {
	state := &model.AgentState{
		CompanyOfInterest: ticker,
		TradeDate:         tradeDate,
	}

	if err := g.runAnalysts(ctx, state); err != nil {
		return state, "", err
	}

	if err := g.runInvestmentDebate(ctx, state); err != nil {
		return state, "", err
	}

	pastLessons := g.pastLessons(ticker)

	plan, err := agents.ResearchManager(ctx, g.deep, state, pastLessons)
	if err != nil {
		return state, "", err
	}
	state.InvestDebate.JudgeDecision = plan
	state.InvestmentPlan = plan
	g.progress("research manager")

	trade, err := agents.Trader(ctx, g.quick, state, pastLessons)
	if err != nil {
		return state, "", err
	}
	state.TraderInvestmentPlan = trade
	g.progress("trader")

	if err := g.runRiskDebate(ctx, state); err != nil {
		return state, "", err
	}

	final, err := agents.RiskJudge(ctx, g.deep, state, pastLessons)
	if err != nil {
		return state, "", err
	}
	state.RiskDebate.JudgeDecision = final
	state.FinalTradeDecision = final
	g.progress("risk judge")

	signal, err := g.ExtractSignal(ctx, final)
	if err != nil {
		return state, "", err
	}
	g.progress("signal extraction")

	return state, signal, nil
}

func (g *TradingGraph) runAnalysts(ctx context.Context, state *model.AgentState) error {
	report, err := agents.MarketAnalyst(ctx, g.quick, state)
	if err != nil {
		return err
	}
	state.MarketReport = report
	g.progress("market analyst")

	report, err = agents.SocialAnalyst(ctx, g.quick, state)
	if err != nil {
		return err
	}
	state.SentimentReport = report
	g.progress("social analyst")

	report, err = agents.NewsAnalyst(ctx, g.quick, state)
	if err != nil {
		return err
	}
	state.NewsReport = report
	g.progress("news analyst")

	report, err = agents.FundamentalsAnalyst(ctx, g.quick, state)
	if err != nil {
		return err
	}
	state.FundamentalsReport = report
	g.progress("fundamentals analyst")

	return nil
}

// runInvestmentDebate alternates bull and bear for maxDebateRounds rounds
// each, threading the shared transcript through both sides' prompts.
func (g *TradingGraph) runInvestmentDebate(ctx context.Context, state *model.AgentState) error {
	debate := &state.InvestDebate

	for round := 0; round < g.maxDebateRounds; round++ {
		bullArg, err := agents.BullResearcher(ctx, g.quick, state)
		if err != nil {
			return err
		}
		debate.BullHistory = appendHistory(debate.BullHistory, bullArg)
		debate.History = appendHistory(debate.History, "Bull Analyst: "+bullArg)
		debate.CurrentResponse = bullArg
		debate.Count++

		bearArg, err := agents.BearResearcher(ctx, g.quick, state)
		if err != nil {
			return err
		}
		debate.BearHistory = appendHistory(debate.BearHistory, bearArg)
		debate.History = appendHistory(debate.History, "Bear Analyst: "+bearArg)
		debate.CurrentResponse = bearArg
		debate.Count++

		g.progress(fmt.Sprintf("investment debate round %d", round+1))
	}

	return nil
}

// runRiskDebate cycles aggressive, conservative, neutral for maxRiskRounds
// rounds.
func (g *TradingGraph) runRiskDebate(ctx context.Context, state *model.AgentState) error {
	debate := &state.RiskDebate

	for round := 0; round < g.maxRiskRounds; round++ {
		out, err := agents.AggressiveRiskAnalyst(ctx, g.quick, state)
		if err != nil {
			return err
		}
		debate.AggressiveHistory = appendHistory(debate.AggressiveHistory, out)
		debate.History = appendHistory(debate.History, "Aggressive Analyst: "+out)
		debate.LatestSpeaker = "Aggressive"
		debate.Count++

		out, err = agents.ConservativeRiskAnalyst(ctx, g.quick, state)
		if err != nil {
			return err
		}
		debate.ConservativeHistory = appendHistory(debate.ConservativeHistory, out)
		debate.History = appendHistory(debate.History, "Conservative Analyst: "+out)
		debate.LatestSpeaker = "Conservative"
		debate.Count++

		out, err = agents.NeutralRiskAnalyst(ctx, g.quick, state)
		if err != nil {
			return err
		}
		debate.NeutralHistory = appendHistory(debate.NeutralHistory, out)
		debate.History = appendHistory(debate.History, "Neutral Analyst: "+out)
		debate.LatestSpeaker = "Neutral"
		debate.Count++

		g.progress(fmt.Sprintf("risk debate round %d", round+1))
	}

	return nil
}

// ExtractSignal reduces a decision paragraph to BUY, SELL, or HOLD using the
// quick thinker, then normalizes the raw response. Unparseable responses
// normalize to HOLD rather than failing the run.
func (g *TradingGraph) ExtractSignal(ctx context.Context, decision string) (model.Signal, error) {
	raw, err := model.Complete(ctx, g.quick, agents.SignalExtractionPrompt, decision)
	if err != nil {
		return "", fmt.Errorf("signal extraction: %w", err)
	}
	return model.ParseSignal(raw), nil
}

// pastLessons renders recent reflection-memory lessons for prompt inclusion.
// Returns a placeholder when no memory is configured or no lessons exist.
func (g *TradingGraph) pastLessons(ticker string) string {
	if g.decisions == nil {
		return "No past memories found."
	}

	lessons, err := g.decisions.RecentLessons(ticker, 3)
	if err != nil || len(lessons) == 0 {
		return "No past memories found."
	}

	var b strings.Builder
	for i, l := range lessons {
		fmt.Fprintf(&b, "%d. [%s %s, %+.2f%%] %s\n", i+1, l.TradeDate, l.Signal, l.ReturnsPct, l.Lesson)
	}
	return b.String()
}

func appendHistory(history, entry string) string {
	if history == "" {
		return entry
	}
	return history + "\n" + entry
}
