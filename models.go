package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Stefan824/TradingAgents/local"
	"github.com/Stefan824/TradingAgents/model"
	"github.com/Stefan824/TradingAgents/provider"
)

var (
	modelsRecommendRAM float64
	modelsPull         string
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the configured provider",
	Long: "Lists the models available on the configured LLM provider. For Ollama this\n" +
		"also reports server health, can pull a model, and can recommend local models\n" +
		"for a given amount of RAM.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if modelsRecommendRAM > 0 {
			recs := local.Recommend(modelsRecommendRAM)
			fmt.Printf("Recommended local models for %.0f GB RAM:\n\nQuick thinking:\n", modelsRecommendRAM)
			for _, r := range recs.QuickThink {
				fmt.Printf("  %-22s %4.1f GB  %s\n", r.Ollama, r.SizeGB, r.Description)
			}
			fmt.Println("\nDeep thinking:")
			for _, r := range recs.DeepThink {
				fmt.Printf("  %-22s %4.1f GB  %s\n", r.Ollama, r.SizeGB, r.Description)
			}
			return nil
		}

		pc := providerConfig(cfg, model.RoleQuick)

		if pc.Type == provider.TypeOllama {
			ok, status := local.CheckOllamaHealth(cmd.Context(), pc.BaseURL)
			fmt.Println(status)
			if !ok {
				return nil
			}

			if modelsPull != "" {
				fmt.Printf("Pulling %s...\n", modelsPull)
				err := local.PullModel(cmd.Context(), pc.BaseURL, modelsPull, func(status string) {
					fmt.Println(status)
				})
				if err != nil {
					return err
				}
				fmt.Println("Done.")
				return nil
			}
		}

		p, err := provider.New(pc)
		if err != nil {
			return err
		}

		models, err := p.ListModels(cmd.Context())
		if err != nil {
			return err
		}

		for _, m := range models {
			if m.Size > 0 {
				fmt.Printf("%-40s %6.1f GB\n", m.Name, float64(m.Size)/(1024*1024*1024))
			} else {
				fmt.Println(m.Name)
			}
		}

		// Flag a configured quick model that the backend doesn't have
		if pc.Type == provider.TypeOllama && !local.CheckOllamaModel(cmd.Context(), pc.BaseURL, pc.Model) {
			fmt.Printf("\nConfigured model %q is not installed.", pc.Model)
			if suggestions := local.SuggestModel(cmd.Context(), pc.BaseURL, pc.Model, 3); len(suggestions) > 0 {
				fmt.Printf(" Did you mean: %v", suggestions)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	modelsCmd.Flags().Float64Var(&modelsRecommendRAM, "recommend", 0, "recommend local models for this much RAM (GB)")
	modelsCmd.Flags().StringVar(&modelsPull, "pull", "", "pull a model onto the Ollama server")
}
