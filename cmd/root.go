// ABOUTME: Root command for the inference-cost CLI
// ABOUTME: Handles global flags and subcommand registration

package cmd

import (
	"github.com/spf13/cobra"
)

var jsonOutput bool

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "inference-cost",
	Short: "LLM inference latency, memory, and cost analyzer",
	Long: `inference-cost estimates the latency, memory footprint, and per-request
cost of running LLM inference, either locally on consumer hardware or
through a hosted API.

All estimation happens in-process against a fixed model and hardware
catalog; no network access is required except for the serve command.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
