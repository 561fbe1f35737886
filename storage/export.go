package storage

import (
	"fmt"
	"strings"

	"github.com/Stefan824/TradingAgents/model"
)

// RenderStateMarkdown converts a run state to a Markdown report: header,
// the four analyst reports, both debate transcripts, and the final plans.
// Empty sections are skipped.
func RenderStateMarkdown(state *model.AgentState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Full State Log — %s\n\n", state.TradeDate)
	fmt.Fprintf(&b, "**Company:** %s | **Trade Date:** %s\n", state.CompanyOfInterest, state.TradeDate)

	writeSection := func(title, body string) {
		if body == "" {
			return
		}
		fmt.Fprintf(&b, "\n---\n## %s\n\n%s\n", title, body)
	}

	writeSection("Market Report", state.MarketReport)
	writeSection("Sentiment Report", state.SentimentReport)
	writeSection("News Report", state.NewsReport)
	writeSection("Fundamentals Report", state.FundamentalsReport)

	writeSubsection := func(title, body string) {
		if body == "" {
			return
		}
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", title, body)
	}

	if state.InvestDebate != (model.InvestDebateState{}) {
		b.WriteString("\n---\n## Investment Debate\n\n")
		writeSubsection("Bull History", state.InvestDebate.BullHistory)
		writeSubsection("Bear History", state.InvestDebate.BearHistory)
		writeSubsection("Current Response", state.InvestDebate.CurrentResponse)
		writeSubsection("Judge Decision", state.InvestDebate.JudgeDecision)
	}

	if state.RiskDebate != (model.RiskDebateState{}) {
		b.WriteString("\n---\n## Risk Debate\n\n")
		writeSubsection("Aggressive History", state.RiskDebate.AggressiveHistory)
		writeSubsection("Conservative History", state.RiskDebate.ConservativeHistory)
		writeSubsection("Neutral History", state.RiskDebate.NeutralHistory)
		writeSubsection("Judge Decision", state.RiskDebate.JudgeDecision)
	}

	writeSection("Investment Plan", state.InvestmentPlan)
	writeSection("Trader Investment Plan", state.TraderInvestmentPlan)
	writeSection("Final Trade Decision", state.FinalTradeDecision)

	return b.String()
}
