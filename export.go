package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Stefan824/TradingAgents/storage"
)

var (
	exportOutput string
	exportSearch string
)

var exportCmd = &cobra.Command{
	Use:   "export [RUN_ID]",
	Short: "List, search, or export saved runs",
	Long: "Without arguments, lists saved runs. With a run ID, exports that run's full\n" +
		"state as a Markdown report. With --search, lists report sections matching a\n" +
		"query across all runs.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		runs, err := storage.NewRunStorage(cfg.Results())
		if err != nil {
			return err
		}

		if exportSearch != "" {
			matches, err := storage.NewSearchIndex(runs).SearchAllRuns(exportSearch)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for _, m := range matches {
				fmt.Printf("%s  %s %s  [%s]\n    %s\n", m.RunID, m.Ticker, m.TradeDate, m.Section, m.Preview)
			}
			return nil
		}

		if len(args) == 0 {
			list, err := runs.List()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("No saved runs.")
				return nil
			}
			for _, meta := range list {
				fmt.Printf("%s  %s %s  %-4s  %s\n",
					meta.ID, meta.Ticker, meta.TradeDate, meta.Signal,
					meta.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		}

		run, err := runs.Load(args[0])
		if err != nil {
			return err
		}

		path := exportOutput
		if path == "" {
			path = runs.GenerateExportPath(run)
		}

		if err := runs.ExportToMarkdown(run.ID, path); err != nil {
			return err
		}

		fmt.Printf("Exported %s to %s\n", run.ID, path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path for the Markdown export")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "search report text across all runs")
}
