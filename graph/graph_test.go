package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/Stefan824/TradingAgents/config"
	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/provider"
	"github.com/Stefan824/TradingAgents/provider/testutil"
	"github.com/Stefan824/TradingAgents/storage"
)

func mockGraph(t *testing.T, debateRounds, riskRounds int) *TradingGraph {
	t.Helper()
	cfg := &config.Config{
		MaxDebateRounds: debateRounds,
		MaxRiskRounds:   riskRounds,
	}
	mock := provider.NewMockProvider("")
	return New(mock, mock, cfg, nil)
}

// The mock-backed pipeline must complete every stage and produce a signal.
// Completion is the contract: individual stage content may be misrouted by
// the keyword router when prompts embed earlier reports.
func TestPropagateMockEndToEnd(t *testing.T) {
	g := mockGraph(t, 1, 1)

	var stages []string
	g.Progress = func(stage string) { stages = append(stages, stage) }

	state, signal, err := g.Propagate(context.Background(), "NVDA", "2026-08-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.CompanyOfInterest != "NVDA" || state.TradeDate != "2026-08-28" {
		t.Errorf("state identity = %q/%q", state.CompanyOfInterest, state.TradeDate)
	}

	checks := []struct {
		name  string
		value string
	}{
		{"market report", state.MarketReport},
		{"sentiment report", state.SentimentReport},
		{"news report", state.NewsReport},
		{"fundamentals report", state.FundamentalsReport},
		{"bull history", state.InvestDebate.BullHistory},
		{"bear history", state.InvestDebate.BearHistory},
		{"debate history", state.InvestDebate.History},
		{"investment plan", state.InvestmentPlan},
		{"trader plan", state.TraderInvestmentPlan},
		{"aggressive history", state.RiskDebate.AggressiveHistory},
		{"conservative history", state.RiskDebate.ConservativeHistory},
		{"neutral history", state.RiskDebate.NeutralHistory},
		{"risk judge decision", state.RiskDebate.JudgeDecision},
		{"final trade decision", state.FinalTradeDecision},
		{"invest judge decision", state.InvestDebate.JudgeDecision},
	}
	for _, c := range checks {
		if c.value == "" {
			t.Errorf("%s is empty after full run", c.name)
		}
	}

	if signal != model.SignalBuy {
		t.Errorf("signal = %q, want BUY", signal)
	}

	if len(stages) == 0 {
		t.Error("no progress stages reported")
	}
}

func TestPropagateHonorsRoundCounts(t *testing.T) {
	g := mockGraph(t, 2, 2)

	state, _, err := g.Propagate(context.Background(), "AAPL", "2026-08-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two debate rounds of bull+bear, two risk rounds of three stances
	if state.InvestDebate.Count != 4 {
		t.Errorf("invest debate count = %d, want 4", state.InvestDebate.Count)
	}
	if state.RiskDebate.Count != 6 {
		t.Errorf("risk debate count = %d, want 6", state.RiskDebate.Count)
	}
	if state.RiskDebate.LatestSpeaker != "Neutral" {
		t.Errorf("latest speaker = %q, want Neutral", state.RiskDebate.LatestSpeaker)
	}
}

func TestNewClampsRoundCounts(t *testing.T) {
	g := mockGraph(t, 0, -3)
	if g.maxDebateRounds != 1 || g.maxRiskRounds != 1 {
		t.Errorf("rounds = %d/%d, want 1/1", g.maxDebateRounds, g.maxRiskRounds)
	}
}

func TestPropagateSurfacesProviderError(t *testing.T) {
	stubErr := errors.New("backend down")
	stub := testutil.NewStubProvider("stub")
	stub.ChatFunc = func(ctx context.Context, _ []model.Message, _ model.StreamCallback) error {
		return stubErr
	}

	cfg := &config.Config{MaxDebateRounds: 1, MaxRiskRounds: 1}
	g := New(stub, stub, cfg, nil)

	state, _, err := g.Propagate(context.Background(), "NVDA", "2026-08-28")
	if !errors.Is(err, stubErr) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
	if state == nil {
		t.Fatal("state should be returned even on failure")
	}
}

func TestExtractSignal(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     model.Signal
	}{
		{"plain buy", "BUY", model.SignalBuy},
		{"wrapped sell", "The decision is SELL.", model.SignalSell},
		{"garbage normalizes to hold", "no idea", model.SignalHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := testutil.FixedResponseProvider(tt.response)
			cfg := &config.Config{MaxDebateRounds: 1, MaxRiskRounds: 1}
			g := New(stub, stub, cfg, nil)

			got, err := g.ExtractSignal(context.Background(), "some decision text")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractSignal = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReflectStoresLesson(t *testing.T) {
	decisions, err := storage.NewDecisionStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open decision storage: %v", err)
	}
	defer decisions.Close()

	cfg := &config.Config{MaxDebateRounds: 1, MaxRiskRounds: 1}
	mock := provider.NewMockProvider("")
	g := New(mock, mock, cfg, decisions)

	state := &model.AgentState{
		CompanyOfInterest:  "NVDA",
		TradeDate:          "2026-08-28",
		FinalTradeDecision: "FINAL TRANSACTION PROPOSAL: **BUY**",
	}

	lesson, err := g.Reflect(context.Background(), state, model.SignalBuy, -3.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lesson == "" {
		t.Fatal("expected a lesson")
	}

	lessons, err := decisions.RecentLessons("NVDA", 5)
	if err != nil {
		t.Fatalf("failed to load lessons: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("expected 1 stored lesson, got %d", len(lessons))
	}
	if lessons[0].ReturnsPct != -3.5 || lessons[0].Signal != "BUY" {
		t.Errorf("stored lesson = %+v", lessons[0])
	}
}

func TestReflectRequiresStorage(t *testing.T) {
	g := mockGraph(t, 1, 1)
	_, err := g.Reflect(context.Background(), &model.AgentState{}, model.SignalBuy, 0)
	if err == nil {
		t.Fatal("expected error without decision storage")
	}
}
