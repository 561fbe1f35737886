package storage

import (
	"strings"
	"time"
)

// RunMatch is one report section of a stored run matching a search query.
type RunMatch struct {
	RunID     string
	Ticker    string
	TradeDate string
	Section   string
	Preview   string
	Timestamp time.Time
}

// SearchIndex scans stored runs for report text matching a query.
type SearchIndex struct {
	storage *RunStorage
}

func NewSearchIndex(storage *RunStorage) *SearchIndex {
	return &SearchIndex{storage: storage}
}

// SearchAllRuns returns every report section across all runs containing the
// query, case-insensitive.
func (si *SearchIndex) SearchAllRuns(query string) ([]RunMatch, error) {
	if query == "" {
		return []RunMatch{}, nil
	}

	runList, err := si.storage.List()
	if err != nil {
		return nil, err
	}

	queryLower := strings.ToLower(query)
	var matches []RunMatch

	for _, runMeta := range runList {
		run, err := si.storage.Load(runMeta.ID)
		if err != nil {
			continue
		}

		sections := []struct {
			name string
			body string
		}{
			{"market_report", run.State.MarketReport},
			{"sentiment_report", run.State.SentimentReport},
			{"news_report", run.State.NewsReport},
			{"fundamentals_report", run.State.FundamentalsReport},
			{"investment_plan", run.State.InvestmentPlan},
			{"trader_investment_plan", run.State.TraderInvestmentPlan},
			{"final_trade_decision", run.State.FinalTradeDecision},
		}

		for _, sec := range sections {
			if sec.body == "" {
				continue
			}
			if !strings.Contains(strings.ToLower(sec.body), queryLower) {
				continue
			}

			preview := sec.body
			if len(preview) > 100 {
				preview = preview[:100] + "..."
			}

			matches = append(matches, RunMatch{
				RunID:     run.ID,
				Ticker:    run.Ticker,
				TradeDate: run.TradeDate,
				Section:   sec.name,
				Preview:   preview,
				Timestamp: run.UpdatedAt,
			})
		}
	}

	return matches, nil
}
