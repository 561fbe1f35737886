package agents

import (
	"context"
	"fmt"

	"github.com/Stefan824/TradingAgents/model"
)

// reportContext renders the four analyst reports for inclusion in debate
// prompts. Skips sections that are empty so partial runs still prompt cleanly.
func reportContext(state *model.AgentState) string {
	sections := []struct {
		title string
		body  string
	}{
		{"Market Research Report", state.MarketReport},
		{"Social Media Sentiment Report", state.SentimentReport},
		{"Latest World Affairs Report", state.NewsReport},
		{"Company Fundamentals Report", state.FundamentalsReport},
	}

	out := ""
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		out += fmt.Sprintf("%s:\n%s\n\n", s.title, s.body)
	}
	return out
}

// BullResearcher argues the bull case for one debate round. The returned
// argument is the raw response; the graph layer appends it to the debate
// histories.
func BullResearcher(ctx context.Context, p model.Provider, state *model.AgentState) (string, error) {
	user := fmt.Sprintf("%sConversation history of the debate:\n%s\n\nLast opposing argument:\n%s\n\nMake your case for %s.",
		reportContext(state), state.InvestDebate.History, state.InvestDebate.CurrentResponse, state.CompanyOfInterest)

	arg, err := model.Complete(ctx, p, bullResearcherPrompt, user)
	if err != nil {
		return "", fmt.Errorf("bull researcher: %w", err)
	}
	return arg, nil
}

// BearResearcher argues the bear case for one debate round.
func BearResearcher(ctx context.Context, p model.Provider, state *model.AgentState) (string, error) {
	user := fmt.Sprintf("%sConversation history of the debate:\n%s\n\nLast opposing argument:\n%s\n\nMake your case against %s.",
		reportContext(state), state.InvestDebate.History, state.InvestDebate.CurrentResponse, state.CompanyOfInterest)

	arg, err := model.Complete(ctx, p, bearResearcherPrompt, user)
	if err != nil {
		return "", fmt.Errorf("bear researcher: %w", err)
	}
	return arg, nil
}

// ResearchManager adjudicates the bull/bear debate and produces the
// investment plan handed to the trader. Runs on the deep thinker.
func ResearchManager(ctx context.Context, p model.Provider, state *model.AgentState, pastLessons string) (string, error) {
	user := fmt.Sprintf("Past reflections on similar situations:\n%s\n\nDebate history:\n%s\n\nDeliver your verdict and investment plan for %s.",
		pastLessons, state.InvestDebate.History, state.CompanyOfInterest)

	plan, err := model.Complete(ctx, p, researchManagerPrompt, user)
	if err != nil {
		return "", fmt.Errorf("research manager: %w", err)
	}
	return plan, nil
}
