package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Stefan824/TradingAgents/graph"
	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/storage"
)

var reflectCmd = &cobra.Command{
	Use:   "reflect RUN_ID RETURNS_PCT",
	Short: "Review a saved run against its realized return",
	Long: "Runs the reflection agent over a saved run given the position's subsequent\n" +
		"return in percent, and stores the lesson in the reflection memory. Lessons\n" +
		"feed into future manager and trader prompts for the same ticker.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		returnsPct, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid return %q: expected a percentage like -3.5", args[1])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
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

		run, err := runs.Load(args[0])
		if err != nil {
			return err
		}

		g := graph.New(quick, deep, cfg, decisions)
		lesson, err := g.Reflect(cmd.Context(), &run.State, model.Signal(run.Signal), returnsPct)
		if err != nil {
			return err
		}

		fmt.Println(renderMarkdown(lesson))
		return nil
	},
}
