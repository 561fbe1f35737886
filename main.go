package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Stefan824/TradingAgents/config"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

var rootCmd = &cobra.Command{
	Use:   "tradingagents",
	Short: "Multi-agent LLM trading analysis",
	Long: "TradingAgents runs a multi-agent trading analysis pipeline: analyst reports,\n" +
		"a bull/bear research debate, a trader decision, and a risk review, backed by\n" +
		"a configurable LLM provider (remote API, local Ollama or llama.cpp, or mock).",
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("tradingagents %s (%s)\n", Version, License))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(launchOllamaCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(reflectCmd)
}

// loadConfig loads the resolved configuration, creating default config files
// on first run, and initializes debug logging.
func loadConfig() (*config.Config, error) {
	// Pick up API keys from a local .env; absence is not an error
	_ = godotenv.Load()

	if !config.FileExists(config.GetSettingsFilePath()) {
		if err := config.CreateDefaultSystemConfig(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.InitDebugLog(cfg.DataDir())

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
