package model

// InvestDebateState tracks the bull/bear researcher debate.
type InvestDebateState struct {
	BullHistory     string `json:"bull_history"`
	BearHistory     string `json:"bear_history"`
	History         string `json:"history"`
	CurrentResponse string `json:"current_response"`
	JudgeDecision   string `json:"judge_decision"`
	Count           int    `json:"count"`
}

// RiskDebateState tracks the three-way risk analyst discussion.
type RiskDebateState struct {
	AggressiveHistory   string `json:"aggressive_history"`
	ConservativeHistory string `json:"conservative_history"`
	NeutralHistory      string `json:"neutral_history"`
	History             string `json:"history"`
	LatestSpeaker       string `json:"latest_speaker"`
	JudgeDecision       string `json:"judge_decision"`
	Count               int    `json:"count"`
}

// AgentState accumulates everything the pipeline produces for one
// (ticker, trade date) run. Stages append to it sequentially; it is never
// shared across goroutines.
type AgentState struct {
	CompanyOfInterest string `json:"company_of_interest"`
	TradeDate         string `json:"trade_date"`

	MarketReport       string `json:"market_report"`
	SentimentReport    string `json:"sentiment_report"`
	NewsReport         string `json:"news_report"`
	FundamentalsReport string `json:"fundamentals_report"`

	InvestDebate InvestDebateState `json:"investment_debate_state"`
	RiskDebate   RiskDebateState   `json:"risk_debate_state"`

	InvestmentPlan       string `json:"investment_plan"`
	TraderInvestmentPlan string `json:"trader_investment_plan"`
	FinalTradeDecision   string `json:"final_trade_decision"`
}
