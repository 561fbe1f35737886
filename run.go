package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Stefan824/TradingAgents/config"
	"github.com/Stefan824/TradingAgents/graph"
	"github.com/Stefan824/TradingAgents/storage"
)

var (
	runNoSave   bool
	runProvider string
	runDeepLLM  string
	runQuickLLM string
)

var runCmd = &cobra.Command{
	Use:   "run TICKER [TRADE_DATE]",
	Short: "Run the trading analysis pipeline for a ticker",
	Long: "Runs the full pipeline for a ticker: analyst reports, the bull/bear debate,\n" +
		"the trader decision, the risk review, and final signal extraction. The trade\n" +
		"date defaults to today (YYYY-MM-DD).",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := args[0]
		tradeDate := time.Now().Format("2006-01-02")
		if len(args) == 2 {
			tradeDate = args[1]
		}
		if _, err := time.Parse("2006-01-02", tradeDate); err != nil {
			return fmt.Errorf("invalid trade date %q: expected YYYY-MM-DD", tradeDate)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if runProvider != "" {
			cfg.LLMProvider = runProvider
		}
		if runDeepLLM != "" {
			cfg.DeepThinkLLM = runDeepLLM
		}
		if runQuickLLM != "" {
			cfg.QuickThinkLLM = runQuickLLM
		}

		deep, quick, err := buildProviders(cfg)
		if err != nil {
			return err
		}

		runs, err := storage.NewRunStorage(cfg.Results())
		if err != nil {
			return err
		}
		decisions, err := storage.NewDecisionStorage(cfg.DataDir())
		if err != nil {
			return err
		}
		defer decisions.Close()

		g := graph.New(quick, deep, cfg, decisions)
		g.Progress = func(stage string) {
			fmt.Fprintf(os.Stderr, "· %s\n", stage)
		}

		fmt.Fprintf(os.Stderr, "Analyzing %s for %s (provider: %s, deep: %s, quick: %s)\n",
			ticker, tradeDate, cfg.LLMProvider, deep.GetDisplayName(), quick.GetDisplayName())

		state, signal, err := g.Propagate(cmd.Context(), ticker, tradeDate)
		if err != nil {
			return fmt.Errorf("pipeline failed: %w", err)
		}

		fmt.Println(renderMarkdown(state.FinalTradeDecision))
		fmt.Printf("\nSignal: %s\n", signal)

		if runNoSave {
			return nil
		}

		run := &storage.Run{
			Ticker:    ticker,
			TradeDate: tradeDate,
			Provider:  cfg.LLMProvider,
			DeepModel: deep.GetModel(),
			QuickMod:  quick.GetModel(),
			Signal:    string(signal),
			State:     *state,
		}
		if err := runs.Save(run); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}

		err = decisions.SaveDecision(storage.Decision{
			ID:        uuid.New().String(),
			RunID:     run.ID,
			Ticker:    ticker,
			TradeDate: tradeDate,
			Signal:    string(signal),
			Provider:  cfg.LLMProvider,
			DeepModel: deep.GetModel(),
			QuickMod:  quick.GetModel(),
			CreatedAt: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		fmt.Printf("Run saved: %s\n", run.ID)
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Run] %s %s -> %s (run=%s)", ticker, tradeDate, signal, run.ID)
		}

		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runNoSave, "no-save", false, "do not persist the run or decision log")
	runCmd.Flags().StringVar(&runProvider, "provider", "", "override the configured LLM provider for this run")
	runCmd.Flags().StringVar(&runDeepLLM, "deep", "", "override the deep-thinking model for this run")
	runCmd.Flags().StringVar(&runQuickLLM, "quick", "", "override the quick-thinking model for this run")
}
