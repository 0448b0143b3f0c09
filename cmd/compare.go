// ABOUTME: Non-interactive scenario comparison command
// ABOUTME: Runs the preset deployment sweep at a chosen token count

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/inferlab/inference-cost-analyzer/internal/engine"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
	"github.com/spf13/cobra"
)

var compareTokens int

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the preset deployment scenarios",
	Long: `Run the standard three-way comparison (local 7B, API 13B, API GPT-4)
at a chosen token count.

Example:
  inference-cost compare --tokens 2000 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return runCompare(ctx, os.Stdout, compareTokens, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().IntVar(&compareTokens, "tokens", 1000, "Total tokens processed per request")
}

func runCompare(ctx context.Context, w io.Writer, tokens int, jsonOut bool) error {
	calc := engine.NewCalculator()
	comparison, err := calc.CompareScenarios(ctx, engine.Presets(tokens))
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(comparison)
	}

	fmt.Fprintf(w, "Scenario Comparison (%d tokens)\n", tokens)
	fmt.Fprintf(w, "==============================\n\n")
	fmt.Fprintf(w, "%-24s %-8s %-12s %12s %12s %12s\n",
		"Scenario", "Model", "Deployment", "Latency (s)", "Memory (GB)", "Cost ($)")
	for _, s := range comparison.Scenarios {
		fmt.Fprintf(w, "%-24s %-8s %-12s %12.2f %12.2f %12.6f\n",
			s.Name, s.Request.Model, describeDeployment(s.Request),
			s.Result.LatencySeconds, s.Result.MemoryUsageGB, s.Result.CostPerRequestUSD)
	}

	for _, s := range comparison.Scenarios {
		if len(s.Result.Recommendations) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", s.Name)
		for _, rec := range s.Result.Recommendations {
			fmt.Fprintf(w, "  [%s] %s\n", rec.Severity, rec.Message)
		}
	}

	return nil
}

func describeDeployment(req models.CalculationRequest) string {
	if req.Deployment == models.DeployLocal {
		return string(req.Hardware)
	}
	return "api"
}
