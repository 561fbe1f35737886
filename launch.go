package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Stefan824/TradingAgents/launcher"
)

var launchOllamaCmd = &cobra.Command{
	Use:   "launch-ollama [-- SERVER_ARGS...]",
	Short: "Launch a standalone Ollama server install",
	Long: "Locates an Ollama installation (OLLAMA_INSTALL_DIR, default ~/ollama-install),\n" +
		"points the shared-library search path at its bundled libraries, and replaces\n" +
		"this process with \"ollama serve\". Extra arguments after -- are forwarded to\n" +
		"the server.",
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Launch only returns on failure; on success the process is replaced
		if err := launcher.Launch(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n%s\n", err, launcher.RemediationText)
			os.Exit(1)
		}
	},
}
